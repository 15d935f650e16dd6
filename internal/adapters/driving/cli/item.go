package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keeperworks/itemvault/internal/core/domain"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage catalogue items",
	Long:  `Add, list, view, update, or remove items in the catalogue.`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new item",
	RunE:  runItemAdd,
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items, newest first",
	RunE:  runItemList,
}

var itemGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemGet,
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace an item's fields",
	Long: `Replaces the title, description, and image reference of an item.

All three fields are overwritten: a flag left out clears that field.`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemRemove,
}

// Field flags shared by add and update.
var (
	itemTitle       string
	itemDescription string
	itemImageURL    string
)

func init() {
	for _, cmd := range []*cobra.Command{itemAddCmd, itemUpdateCmd} {
		cmd.Flags().StringVarP(&itemTitle, "title", "t", "", "Item title (required)")
		cmd.Flags().StringVarP(&itemDescription, "description", "d", "", "Item description")
		cmd.Flags().StringVarP(&itemImageURL, "image", "i", "", "Image reference (URL, path, or data URI)")
	}

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(cmd *cobra.Command, _ []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	draft := domain.Item{Title: itemTitle, Description: itemDescription, ImageURL: itemImageURL}
	if err := draft.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	id, err := itemService.Create(ctx, itemTitle, itemDescription, itemImageURL)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	cmd.Printf("Added item %d: %s\n", id, itemTitle)
	return nil
}

func runItemList(cmd *cobra.Command, _ []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	ctx := context.Background()

	items, err := itemService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No items in the catalogue.")
		return nil
	}

	for i := range items {
		cmd.Printf("  %d  %s\n", items[i].ID, items[i].Title)
		if items[i].Description != "" {
			cmd.Printf("     %s\n", items[i].Description)
		}
	}
	cmd.Printf("\nTotal: %d items\n", len(items))
	return nil
}

func runItemGet(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	item, err := itemService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no item with id %d", id)
		}
		return fmt.Errorf("failed to get item: %w", err)
	}

	cmd.Printf("Item %d\n\n", item.ID)
	cmd.Printf("  Title:       %s\n", item.Title)
	if item.Description != "" {
		cmd.Printf("  Description: %s\n", item.Description)
	}
	if item.HasImage() {
		cmd.Printf("  Image:       %s (%s)\n", item.ImageURL, item.ImageKind())
	}
	cmd.Printf("  Created:     %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:     %s\n", item.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	draft := domain.Item{Title: itemTitle, Description: itemDescription, ImageURL: itemImageURL}
	if err := draft.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	if err := itemService.Update(ctx, id, itemTitle, itemDescription, itemImageURL); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	cmd.Printf("Updated item %d.\n", id)
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := itemService.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	cmd.Printf("Removed item %d.\n", id)
	return nil
}

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}
