package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/resource"
	"github.com/triunfo/balanzas/internal/validation"
)

type resourceKind int

const (
	resourceManual resourceKind = iota
	resourceCalibration
)

func (c *Cli) runListProducts(ctx context.Context) {
	products, err := c.products.GetProducts(ctx)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}
	if len(products) == 0 {
		c.io.Println("No products registered.")
		return
	}

	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)

	c.io.Printf("%d product(s):\n", len(names))
	for _, name := range names {
		p := products[name]
		c.io.Printf("  %-30s serial: %-15s stock: %d\n", name, p.Serial, p.Stock)
	}
}

func (c *Cli) runShowProduct(ctx context.Context) {
	name, err := c.io.ReadInput("Product name: ")
	if err != nil || name == "" {
		return
	}

	p, err := c.products.GetProduct(ctx, name)
	if err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	c.activity.Record("Product Viewed", "product: "+name)
	c.io.Printf("Product: %s\n", name)
	c.io.Printf("  Serial:          %s\n", p.Serial)
	c.io.Printf("  Manual:          %s\n", orNone(p.ManualRef))
	c.io.Printf("  Calibration:     %s\n", orNone(p.CalibrationRef))
	c.io.Printf("  Battery:         %s\n", p.Battery)
	c.io.Printf("  Info:            %s\n", p.Info)
	c.io.Printf("  Image:           %s\n", orNone(p.ImageFilename))
	c.io.Printf("  Stock:           %d\n", p.Stock)
}

func (c *Cli) runAddProduct(ctx context.Context) {
	name, err := c.io.ReadInput("Product name: ")
	if err != nil {
		return
	}
	if err := validation.ProductName(name); err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}

	var p models.Product
	if p.Serial, err = c.io.ReadInput("Serial: "); err != nil {
		return
	}
	if p.ManualRef, err = c.io.ReadInput("Manual (URL or file name, optional): "); err != nil {
		return
	}
	if p.CalibrationRef, err = c.io.ReadInput("Calibration URL (optional): "); err != nil {
		return
	}
	if p.Battery, err = c.io.ReadInput("Battery: "); err != nil {
		return
	}
	if p.Info, err = c.io.ReadInput("Info: "); err != nil {
		return
	}
	if p.ImageFilename, err = c.io.ReadInput("Image file name (optional): "); err != nil {
		return
	}

	stockInput, err := c.io.ReadInput("Stock: ")
	if err != nil {
		return
	}
	p.Stock, err = parseStock(stockInput)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}

	if err := validation.Struct(p); err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}
	if err := c.products.CreateProduct(ctx, name, p); err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	c.activity.Record("Product Registered", "product: "+name)
	c.io.Printf("Product %q registered.\n", name)
}

func (c *Cli) runEditProduct(ctx context.Context) {
	name, err := c.io.ReadInput("Product name: ")
	if err != nil || name == "" {
		return
	}

	current, err := c.products.GetProduct(ctx, name)
	if err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	c.io.Println("Press Enter to keep the current value.")
	var upd models.ProductUpdate
	upd.Serial = c.promptField("Serial", current.Serial)
	upd.ManualRef = c.promptField("Manual", current.ManualRef)
	upd.CalibrationRef = c.promptField("Calibration", current.CalibrationRef)
	upd.Battery = c.promptField("Battery", current.Battery)
	upd.Info = c.promptField("Info", current.Info)
	upd.ImageFilename = c.promptField("Image", current.ImageFilename)

	stockInput, err := c.io.ReadInput(fmt.Sprintf("Stock [%d]: ", current.Stock))
	if err != nil {
		return
	}
	if stockInput != "" {
		stock, err := parseStock(stockInput)
		if err != nil {
			c.io.Printf("Error: %v\n", err)
			return
		}
		upd.Stock = &stock
	}

	if err := c.products.UpdateProduct(ctx, name, upd); err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	c.activity.Record("Product Updated", "product: "+name)
	c.io.Printf("Product %q updated.\n", name)
}

func (c *Cli) runDeleteProduct(ctx context.Context) {
	name, err := c.io.ReadInput("Product name: ")
	if err != nil || name == "" {
		return
	}
	if !c.confirm(fmt.Sprintf("Delete product %q?", name)) {
		return
	}

	if err := c.products.DeleteProduct(ctx, name); err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	c.activity.Record("Product Deleted", "product: "+name)
	c.io.Printf("Product %q deleted.\n", name)
}

func (c *Cli) runOpenResource(ctx context.Context, kind resourceKind) {
	name, err := c.io.ReadInput("Product name: ")
	if err != nil || name == "" {
		return
	}

	p, err := c.products.GetProduct(ctx, name)
	if err != nil {
		c.reportStoreError(err, "Product")
		return
	}

	ref := p.ManualRef
	if kind == resourceCalibration {
		ref = p.CalibrationRef
	}

	if err := c.opener.Open(ref); err != nil {
		if errors.Is(err, resource.ErrNotAvailable) {
			c.io.Println("This resource is not available.")
		} else {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

// promptField asks for one field, showing its current value. Returns nil
// (keep) when the user just presses Enter.
func (c *Cli) promptField(label, current string) *string {
	input, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil || input == "" {
		return nil
	}
	return &input
}

func parseStock(input string) (int, error) {
	stock, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("stock must be a whole number, got %q", input)
	}
	if stock < 0 {
		return 0, fmt.Errorf("stock cannot be negative, got %d", stock)
	}
	return stock, nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
