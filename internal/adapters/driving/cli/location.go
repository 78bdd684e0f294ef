package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

var locationCmd = &cobra.Command{
	Use:     "location",
	Aliases: []string{"loc"},
	Short:   "Manage shelf locations and the products they hold",
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations ordered by name",
	Args:  cobra.NoArgs,
	RunE:  runLocationList,
}

var locationGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationGet,
}

var locationFindCmd = &cobra.Command{
	Use:   "find <product-id>",
	Short: "Find the location holding a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationFind,
}

var locationSubscribeCmd = &cobra.Command{
	Use:   "subscribe <location-id> <product-id>",
	Short: "Place a product in an empty location",
	Long: `Place a product in an empty location.

Fails if the location already holds a product or the product is already
placed elsewhere.`,
	Args: cobra.ExactArgs(2),
	RunE: runLocationSubscribe,
}

var locationUnsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe <location-id>",
	Short: "Empty a location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationUnsubscribe,
}

var (
	locationJSON bool
	locationPage pageFlags
)

func init() {
	locationPage.register(locationListCmd)
	for _, cmd := range []*cobra.Command{locationListCmd, locationGetCmd, locationFindCmd} {
		cmd.Flags().BoolVar(&locationJSON, "json", false, "Output as JSON")
	}

	locationCmd.AddCommand(locationListCmd)
	locationCmd.AddCommand(locationGetCmd)
	locationCmd.AddCommand(locationFindCmd)
	locationCmd.AddCommand(locationSubscribeCmd)
	locationCmd.AddCommand(locationUnsubscribeCmd)
	rootCmd.AddCommand(locationCmd)
}

func formatLocation(loc *domain.Location) string {
	line := fmt.Sprintf("[%d] %s (aisle %s, shelf %s)", loc.ID, loc.Name, loc.Aisle, loc.Shelf)
	if !loc.HoldsProduct() {
		return line + "  empty"
	}
	return line + "  " + formatProduct(loc.Product)
}

func runLocationList(cmd *cobra.Command, _ []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}

	page, err := locationService.FindAll(cmd.Context(), locationPage.request())
	if err != nil {
		return err
	}
	if locationJSON {
		return printJSON(cmd, page)
	}

	for i := range page.Items {
		cmd.Println(formatLocation(&page.Items[i]))
	}
	cmd.Printf("\nPage %d of %d (%d locations)\n", page.Number+1, page.TotalPages(), page.TotalElements)
	return nil
}

func runLocationGet(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	loc, err := locationService.FindByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printLocation(cmd, loc)
}

func runLocationFind(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	productID, err := parseID(args[0])
	if err != nil {
		return err
	}

	loc, err := locationService.FindByProductID(cmd.Context(), productID)
	if err != nil {
		return err
	}
	return printLocation(cmd, loc)
}

func runLocationSubscribe(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	locationID, err := parseID(args[0])
	if err != nil {
		return err
	}
	productID, err := parseID(args[1])
	if err != nil {
		return err
	}

	loc, err := locationService.SubscribeProduct(cmd.Context(), locationID, productID)
	if err != nil {
		return err
	}
	cmd.Printf("Subscribed %s\n", formatLocation(loc))
	return nil
}

func runLocationUnsubscribe(cmd *cobra.Command, args []string) error {
	if locationService == nil {
		return errors.New("location service not configured")
	}
	locationID, err := parseID(args[0])
	if err != nil {
		return err
	}

	loc, err := locationService.UnsubscribeProduct(cmd.Context(), locationID)
	if err != nil {
		return err
	}
	cmd.Printf("Unsubscribed %s\n", formatLocation(loc))
	return nil
}

func printLocation(cmd *cobra.Command, loc *domain.Location) error {
	if locationJSON {
		return printJSON(cmd, loc)
	}
	cmd.Println(formatLocation(loc))
	return nil
}
