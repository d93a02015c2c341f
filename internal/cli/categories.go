package cli

import (
	"context"
	"fmt"

	"github.com/wealthflow/backend/internal/application/usecase/category"
	"github.com/wealthflow/backend/internal/application/usecase/dashboard"
	"github.com/wealthflow/backend/internal/domain/entity"
)

type CategoriesCmd struct {
	List   CategoriesListCmd   `cmd:"" default:"1" help:"List categories with their usage."`
	Add    CategoriesAddCmd    `cmd:"" help:"Create a category."`
	Edit   CategoriesEditCmd   `cmd:"" help:"Update a category. Existing transactions keep the old name."`
	Delete CategoriesDeleteCmd `cmd:"" help:"Delete a category."`
}

type CategoriesListCmd struct{}

func (cmd *CategoriesListCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.ListCategories.Execute(ctx, category.ListCategoriesInput{})
	if err != nil {
		return err
	}

	for _, c := range out.Categories {
		limit := mutedStyle.Render("no limit")
		if c.Category.Limit != nil {
			limit = fmt.Sprintf("limit %s", c.Category.Limit.StringFixed(2))
			if c.LimitUsage != nil {
				limit = fmt.Sprintf("%s (%.0f%% used)", limit, *c.LimitUsage)
			}
		}
		_, _ = fmt.Fprintf(app.Stdout, "  %-38s %-20s %3d tx  %12s  %s\n",
			mutedStyle.Render(c.Category.ID), c.Category.Name, c.TransactionCount, c.PeriodTotal.StringFixed(2), limit)
	}
	return nil
}

type CategoriesAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Display color."`
	Icon  string `help:"Display icon."`
	Limit Amount `help:"Monthly spending limit."`
	Type  string `help:"Category type." enum:"expense,income" default:"expense"`
}

func (cmd *CategoriesAddCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.CreateCategory.Execute(ctx, category.CreateCategoryInput{
		Name:  cmd.Name,
		Color: cmd.Color,
		Icon:  cmd.Icon,
		Limit: cmd.Limit.ptr(),
		Type:  entity.CategoryType(cmd.Type),
	})
	if err != nil {
		return err
	}

	printSuccess(app.Stdout, fmt.Sprintf("Created category %s (%s)", out.Category.Name, out.Category.ID))
	return nil
}

type CategoriesEditCmd struct {
	ID    string `arg:"" help:"Category ID."`
	Name  string `help:"New name." required:""`
	Color string `help:"Display color."`
	Icon  string `help:"Display icon."`
	Limit Amount `help:"Monthly spending limit. Omit to clear it."`
	Type  string `help:"Category type." enum:"expense,income" default:"expense"`
}

func (cmd *CategoriesEditCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.UpdateCategory.Execute(ctx, category.UpdateCategoryInput{
		ID:    cmd.ID,
		Name:  cmd.Name,
		Color: cmd.Color,
		Icon:  cmd.Icon,
		Limit: cmd.Limit.ptr(),
		Type:  entity.CategoryType(cmd.Type),
	})
	if err != nil {
		return err
	}

	printSuccess(app.Stdout, fmt.Sprintf("Updated category %s", out.Category.Name))
	if out.PreviousName != "" && out.OrphanedTransactions > 0 {
		printInfof(app.Stdout, "%d transaction(s) still reference %q", out.OrphanedTransactions, out.PreviousName)
	}
	return nil
}

type CategoriesDeleteCmd struct {
	ID  string `arg:"" help:"Category ID."`
	Yes bool   `help:"Delete without asking." short:"y"`
}

func (cmd *CategoriesDeleteCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	confirmed, err := app.confirm(fmt.Sprintf("Delete category %q?", cmd.ID), cmd.Yes)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		printInfof(app.Stdout, "Aborted")
		return nil
	}

	out, err := uc.DeleteCategory.Execute(ctx, category.DeleteCategoryInput{ID: cmd.ID})
	if err != nil {
		return err
	}

	printSuccess(app.Stdout, fmt.Sprintf("Deleted category %s", out.Category.Name))
	if out.OrphanedTransactions > 0 {
		printInfof(app.Stdout, "%d transaction(s) still reference %q", out.OrphanedTransactions, out.Category.Name)
	}
	return nil
}

type AnalyticsCmd struct {
	Period   string `help:"Period to analyse." enum:"WEEK,MONTH,YEAR" default:"MONTH"`
	Month    int    `help:"Month (1-12). Defaults to the current month."`
	Year     int    `help:"Year. Defaults to the current year."`
	Currency string `help:"Currency code." enum:"ARS,USD" default:"ARS"`
}

func (cmd *AnalyticsCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.CategoryBreakdown.Execute(ctx, dashboard.GetCategoryBreakdownInput{
		Period:   dashboard.Period(cmd.Period),
		Month:    cmd.Month,
		Year:     cmd.Year,
		Currency: entity.Currency(cmd.Currency),
	})
	if err != nil {
		return err
	}

	printHeader(app.Stdout, fmt.Sprintf("%s expenses, %s", out.Period.PeriodLabel, out.Currency))
	if out.TotalExpenses.IsZero() {
		printInfof(app.Stdout, "No expenses in this period")
		return nil
	}

	for _, item := range out.Categories {
		_, _ = fmt.Fprintf(app.Stdout, "  %-20s %12s  %5.1f%%  %3d tx\n",
			item.CategoryName, item.Amount.StringFixed(2), item.Percentage, item.TransactionCount)
	}
	if out.UnlistedAmount.IsPositive() {
		_, _ = fmt.Fprintf(app.Stdout, "  %-20s %12s\n", mutedStyle.Render("(unlisted)"), out.UnlistedAmount.StringFixed(2))
	}
	printInfof(app.Stdout, "Total %s", formatMoney(out.TotalExpenses, string(out.Currency)))
	return nil
}
