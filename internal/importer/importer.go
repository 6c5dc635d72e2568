package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shoemarket/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads a catalog export and inserts products for one seller.
// Expected header: name,description,price_cents,stock,category,brand,size,color,image_url.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
	sellerID string
}

func NewCSVImporter(r io.Reader, products ProductWriter, sellerID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		products: products,
		sellerID: sellerID,
	}
}

// Run parses CSV rows and inserts one product per row. Rows without a name
// are skipped. Returns the number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing name column")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := i.parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if product == nil {
			continue
		}

		if _, err := i.products.Create(ctx, *product); err != nil {
			return imported, fmt.Errorf("insert %s: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := field(record, index, "name")
	if name == "" {
		return nil, nil
	}

	priceCents, err := parseInt64(field(record, index, "price_cents"))
	if err != nil {
		return nil, fmt.Errorf("price_cents: %w", err)
	}
	stock, err := parseInt(field(record, index, "stock"))
	if err != nil {
		return nil, fmt.Errorf("stock: %w", err)
	}

	return &domain.Product{
		SellerID:    i.sellerID,
		Name:        name,
		Description: field(record, index, "description"),
		PriceCents:  priceCents,
		Stock:       stock,
		Category:    field(record, index, "category"),
		Brand:       field(record, index, "brand"),
		Size:        field(record, index, "size"),
		Color:       field(record, index, "color"),
		ImageURL:    field(record, index, "image_url"),
	}, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
