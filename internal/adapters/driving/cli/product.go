package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalogue",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products ordered by name",
	Args:  cobra.NoArgs,
	RunE:  runProductList,
}

var productGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductGet,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Long: `Add a product to the catalogue.

Examples:
  mapmarket product add --nome "Arroz 5kg" --preco 23.90`,
	Args: cobra.NoArgs,
	RunE: runProductAdd,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a product's name and price",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductUpdate,
}

var productRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a product",
	Long: `Remove a product. A location holding it becomes empty.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProductRemove,
}

var (
	productName  string
	productPrice string
	productJSON  bool
	productPage  pageFlags
)

func init() {
	productPage.register(productListCmd)
	productListCmd.Flags().BoolVar(&productJSON, "json", false, "Output as JSON")
	productGetCmd.Flags().BoolVar(&productJSON, "json", false, "Output as JSON")

	for _, cmd := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		cmd.Flags().StringVar(&productName, "nome", "", "Product name")
		cmd.Flags().StringVar(&productPrice, "preco", "", "Product price, e.g. 23.90")
	}

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productRemoveCmd)
	rootCmd.AddCommand(productCmd)
}

// pageFlags holds the paging flags shared by list commands.
type pageFlags struct {
	page      int
	size      int
	direction string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "Zero-based page number")
	cmd.Flags().IntVar(&f.size, "size", domain.DefaultPageSize, "Page size")
	cmd.Flags().StringVar(&f.direction, "direction", string(domain.DirectionAsc), "Sort direction (asc or desc)")
}

func (f *pageFlags) request() domain.PageRequest {
	return domain.PageRequest{
		Page:      f.page,
		Size:      f.size,
		Direction: domain.ParseDirection(f.direction),
	}.Normalise()
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, domain.NewInvalidParameter("id", "not a valid id")
	}
	return id, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func formatProduct(p *domain.Product) string {
	return fmt.Sprintf("[%d] %s  R$ %s", p.ID, p.Name, p.Price.StringFixed(2))
}

func runProductList(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}

	page, err := productService.FindAll(cmd.Context(), productPage.request())
	if err != nil {
		return err
	}
	if productJSON {
		return printJSON(cmd, page)
	}

	for i := range page.Items {
		cmd.Println(formatProduct(&page.Items[i]))
	}
	cmd.Printf("\nPage %d of %d (%d products)\n", page.Number+1, page.TotalPages(), page.TotalElements)
	return nil
}

func runProductGet(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	product, err := productService.FindByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	if productJSON {
		return printJSON(cmd, product)
	}
	cmd.Println(formatProduct(product))
	return nil
}

func runProductAdd(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}

	product, err := productService.Create(cmd.Context(), driving.ProductRequest{
		Name:  productName,
		Price: productPrice,
	})
	if err != nil {
		return err
	}
	cmd.Printf("Added %s\n", formatProduct(product))
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	product, err := productService.Update(cmd.Context(), id, driving.ProductRequest{
		Name:  productName,
		Price: productPrice,
	})
	if err != nil {
		return err
	}
	cmd.Printf("Updated %s\n", formatProduct(product))
	return nil
}

func runProductRemove(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := productService.Delete(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("Removed product %d\n", id)
	return nil
}
