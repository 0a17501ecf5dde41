package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/data"
)

func addProduct(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products"},
		Short:   "Manage the product catalog",
		Example: `
kiosk product ls
kiosk product rename Yoghurt "Greek yoghurt"
kiosk product rename Tofu Tofu --category Asian
kiosk product rm Tofu --yes
`,
	}
	addProductList(cmd, v)
	addProductRename(cmd, v)
	addProductRemove(cmd, v)

	topLevel.AddCommand(cmd)
}

func addProductList(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "ls [category]",
		Short: "List products, optionally of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			var products []data.Product
			if len(args) == 1 {
				products, err = b.ProductsByCategory(cmd.Context(), args[0])
			} else {
				products, err = b.ListProducts(cmd.Context())
			}
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products.")
				return nil
			}
			sort.SliceStable(products, func(i, j int) bool {
				return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
			})
			tbl := newTable("Category", "Product", "ID")
			for _, g := range data.GroupByCategory(products, func(p data.Product) string { return p.CategoryName }, noCategory) {
				for i, p := range g.Items {
					cat := ""
					if i == 0 {
						cat = g.Category
					}
					tbl.AddRow(cat, p.Name, p.ID)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func findProduct(cmd *cobra.Command, b data.ProductService, ref string) (data.Product, error) {
	products, err := b.ListProducts(cmd.Context())
	if err != nil {
		return data.Product{}, err
	}
	return resolve("product", ref, products,
		func(p data.Product) string { return p.ID },
		func(p data.Product) string { return p.Name })
}

func addProductRename(parent *cobra.Command, v *viper.Viper) {
	category := ""
	cmd := &cobra.Command{
		Use:   "rename <product> <name>",
		Short: "Rename a product or move it to another category",
		Args:  exactArgs(2, "a product and its new name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			p, err := findProduct(cmd, b, args[0])
			if err != nil {
				return err
			}
			// An empty category clears it, so keep the current one unless asked.
			if !cmd.Flags().Changed("category") {
				category = p.CategoryName
			}
			p, err = b.UpdateProduct(cmd.Context(), p.ID, args[1], category)
			if err != nil {
				return err
			}
			if p.CategoryName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", p.Name, p.CategoryName)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Move the product to this category. Empty removes its category.")
	parent.AddCommand(cmd)
}

func addProductRemove(parent *cobra.Command, v *viper.Viper) {
	yes := false
	cmd := &cobra.Command{
		Use:   "rm <product>",
		Short: "Delete a product",
		Args:  exactArgs(1, "a product id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			p, err := findProduct(cmd, b, args[0])
			if err != nil {
				return err
			}
			if ok, err := confirmed(cmd, yes, fmt.Sprintf("Delete product %s?", p.Name)); err != nil || !ok {
				return err
			}
			if err := b.DeleteProduct(cmd.Context(), p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", p.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}

func addCategory(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage product categories",
		Example: `
kiosk category ls
kiosk category add Spices
kiosk category rename Spices "Herbs & spices"
kiosk category rm Spices --yes
`,
	}
	addCategoryList(cmd, v)
	addCategoryAdd(cmd, v)
	addCategoryRename(cmd, v)
	addCategoryRemove(cmd, v)

	topLevel.AddCommand(cmd)
}

func addCategoryList(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			cats, err := b.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories.")
				return nil
			}
			tbl := newTable("Category", "ID")
			for _, c := range cats {
				tbl.AddRow(c.Name, c.ID)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addCategoryAdd(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args, " "))
			cats, err := b.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if c, ok := data.FindCategory(cats, name); ok {
				return fmt.Errorf("category %s already exists", c.Name)
			}
			c, err := b.CreateCategory(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", c.Name)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func findCategory(cmd *cobra.Command, b data.CategoryService, ref string) (data.Category, []data.Category, error) {
	cats, err := b.ListCategories(cmd.Context())
	if err != nil {
		return data.Category{}, nil, err
	}
	c, err := resolve("category", ref, cats,
		func(c data.Category) string { return c.ID },
		func(c data.Category) string { return c.Name })
	return c, cats, err
}

func addCategoryRename(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "rename <category> <name>",
		Short: "Rename a category",
		Args:  exactArgs(2, "a category and its new name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			c, cats, err := findCategory(cmd, b, args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[1])
			if other, ok := data.FindCategory(cats, name); ok && other.ID != c.ID {
				return fmt.Errorf("category %s already exists", other.Name)
			}
			c, err = b.UpdateCategory(cmd.Context(), c.ID, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %s\n", c.Name)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addCategoryRemove(parent *cobra.Command, v *viper.Viper) {
	yes := false
	cmd := &cobra.Command{
		Use:   "rm <category>",
		Short: "Delete a category; its products become uncategorized",
		Args:  exactArgs(1, "a category id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			c, _, err := findCategory(cmd, b, args[0])
			if err != nil {
				return err
			}
			if ok, err := confirmed(cmd, yes, fmt.Sprintf("Delete category %s?", c.Name)); err != nil || !ok {
				return err
			}
			if err := b.DeleteCategory(cmd.Context(), c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", c.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}
