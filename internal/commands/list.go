package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/data"
)

const noCategory = "Other"

func addList(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"shopping"},
		Short:   "Show and edit the shopping list",
		Example: `
kiosk list ls
kiosk list add Flour --category Baking
kiosk list qty Eggs 12
kiosk list rm Eggs --yes
`,
	}
	addListShow(cmd, v)
	addListAdd(cmd, v)
	addListQuantity(cmd, v)
	addListRemove(cmd, v)

	topLevel.AddCommand(cmd)
}

func addListShow(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the list grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			items, err := b.ListItems(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The list is empty.")
				return nil
			}
			sort.SliceStable(items, func(i, j int) bool {
				return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
			})
			tbl := newTable("Category", "Item", "Qty", "ID")
			for _, g := range data.GroupByCategory(items, func(it data.ShoppingItem) string { return it.Category }, noCategory) {
				for i, it := range g.Items {
					cat := ""
					if i == 0 {
						cat = g.Category
					}
					tbl.AddRow(cat, it.Name, it.Quantity, it.ID)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addListAdd(parent *cobra.Command, v *viper.Viper) {
	category := ""
	cmd := &cobra.Command{
		Use:   "add <item>",
		Short: "Put an item on the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			items, err := b.ListItems(cmd.Context())
			if err != nil {
				return err
			}
			if data.ContainsItem(items, name, category) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already on the list\n", name)
				return nil
			}
			it, err := b.AddItem(cmd.Context(), name, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", it.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category of a new product.")
	parent.AddCommand(cmd)
}

func findItem(cmd *cobra.Command, b data.ShoppingService, ref string) (data.ShoppingItem, error) {
	items, err := b.ListItems(cmd.Context())
	if err != nil {
		return data.ShoppingItem{}, err
	}
	return resolve("item", ref, items,
		func(it data.ShoppingItem) string { return it.ID },
		func(it data.ShoppingItem) string { return it.Name })
}

func addListQuantity(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "qty <item> <quantity>",
		Aliases: []string{"quantity"},
		Short:   "Set how much of an item to buy",
		Args:    exactArgs(2, "an item and a quantity"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			it, err := findItem(cmd, b, args[0])
			if err != nil {
				return err
			}
			q := strings.TrimSpace(args[1])
			if err := b.UpdateQuantity(cmd.Context(), it.ID, q); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", it.Name, q)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addListRemove(parent *cobra.Command, v *viper.Viper) {
	yes := false
	cmd := &cobra.Command{
		Use:   "rm <item>",
		Short: "Take an item off the list",
		Args:  exactArgs(1, "an item id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			it, err := findItem(cmd, b, args[0])
			if err != nil {
				return err
			}
			if ok, err := confirmed(cmd, yes, fmt.Sprintf("Remove %s from the list?", it.Name)); err != nil || !ok {
				return err
			}
			if err := b.DeleteItem(cmd.Context(), it.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", it.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}
