package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/skarbnik-dev/skarbnik/internal/model"
	"github.com/skarbnik-dev/skarbnik/internal/store"
)

func newSetCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-category ID CATEGORY",
		Short: "Override the category on a stored transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing transaction ID: %w", err)
			}

			svc := store.NewService(cfg.Data.Dir)
			if err := requireCategory(svc, args[1]); err != nil {
				return err
			}
			if err := svc.UpdateCategory(id, args[1]); err != nil {
				return err
			}

			fmt.Printf("Set category %q on %s\n", args[1], id)
			return nil
		},
	}
}

func newSetCampCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-camp ID CAMP",
		Short: "Assign a camp label to a stored transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing transaction ID: %w", err)
			}

			svc := store.NewService(cfg.Data.Dir)
			if err := svc.UpdateCamp(id, args[1]); err != nil {
				return err
			}

			fmt.Printf("Set camp %q on %s\n", args[1], id)
			return nil
		},
	}
}

func newAddCategoryCommand() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "add-category NAME",
		Short: "Add a category to the category master",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ct := model.CategoryType(categoryType)
			if ct != model.CategoryTypeIncome && ct != model.CategoryTypeExpense {
				return fmt.Errorf("invalid category type %q (want income or expense)", categoryType)
			}

			svc := store.NewService(cfg.Data.Dir)
			cat, err := svc.AddCategory(args[0], ct)
			if err != nil {
				return err
			}

			fmt.Printf("Added category %q (%s)\n", cat.Name, cat.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "income", "category type (income or expense)")
	return cmd
}

func newAddCampCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-camp NAME",
		Short: "Add a camp to the camp master",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := store.NewService(cfg.Data.Dir)
			camp, err := svc.AddCamp(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Added camp %q\n", camp.Name)
			return nil
		},
	}
}

// requireCategory rejects labels that are not in the category master, so
// manual overrides stay consistent with reporting.
func requireCategory(svc *store.Service, name string) error {
	cats, err := svc.Categories()
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c.Name == name {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (add it with 'skarbnik add-category')", name)
}
