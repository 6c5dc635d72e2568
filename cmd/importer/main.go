package main

import (
	"context"
	"flag"
	"log"
	"os"

	"shoemarket/internal/config"
	"shoemarket/internal/db"
	"shoemarket/internal/importer"
	productrepo "shoemarket/internal/repository/product"
	userrepo "shoemarket/internal/repository/user"
)

func main() {
	var (
		file        = flag.String("file", "", "path to catalog CSV")
		sellerEmail = flag.String("seller", "", "email of the seller to own imported products")
	)
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *file == "" || *sellerEmail == "" {
		logger.Fatal("usage: importer -file catalog.csv -seller seller@example.com")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	seller, err := userrepo.NewPostgres(pool, logger).GetByEmail(ctx, *sellerEmail)
	if err != nil {
		logger.Fatalf("resolve seller %s: %v", *sellerEmail, err)
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewPostgres(pool, logger), seller.ID)
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}

	logger.Printf("imported %d products for %s", count, seller.Email)
}
