package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

func idArg(args []string, i int) (int, error) {
	id, err := strconv.Atoi(args[i])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}

func group(use, short string, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(subs...)
	return cmd
}

// ── Inventory ────────────────────────────────────────────────────────────────

func newInventoryCmd(a *app) *cobra.Command {
	var f domain.InventoryFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List stock lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.client.Inventory.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.print(items)
		},
	}
	list.Flags().IntVar(&f.WarehouseID, "warehouse", 0, "only this warehouse")
	list.Flags().StringVar(&f.SKU, "sku", "", "only this SKU")
	list.Flags().BoolVar(&f.LowStock, "low-stock", false, "only lines at or below their reorder point")
	list.Flags().IntVar(&f.Skip, "skip", 0, "lines to skip")
	list.Flags().IntVar(&f.Limit, "limit", 0, "maximum lines to return")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one stock line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			item, err := a.client.Inventory.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(item)
		},
	}

	summary := &cobra.Command{
		Use:   "summary <warehouse-id>",
		Short: "Aggregate the stock of one warehouse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			sum, err := a.client.Inventory.WarehouseSummary(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(sum)
		},
	}

	return group("inventory", "Inventory lines", list, get, summary)
}

// ── Warehouses ───────────────────────────────────────────────────────────────

func newWarehousesCmd(a *app) *cobra.Command {
	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List warehouses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			whs, err := a.client.Warehouses.List(cmd.Context(), page)
			if err != nil {
				return err
			}
			return a.print(whs)
		},
	}
	list.Flags().IntVar(&page.Skip, "skip", 0, "warehouses to skip")
	list.Flags().IntVar(&page.Limit, "limit", 0, "maximum warehouses to return")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one warehouse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			wh, err := a.client.Warehouses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(wh)
		},
	}

	layout := &cobra.Command{
		Use:   "layout <id>",
		Short: "Show the decoded floor-plan grid of a warehouse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			wh, err := a.client.Warehouses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			grid, err := wh.Layout()
			if err != nil {
				return err
			}
			return a.print(grid)
		},
	}

	return group("warehouses", "Storage sites", list, get, layout)
}

// ── Vehicles ─────────────────────────────────────────────────────────────────

func newVehiclesCmd(a *app) *cobra.Command {
	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List fleet vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vs, err := a.client.Vehicles.List(cmd.Context(), page)
			if err != nil {
				return err
			}
			return a.print(vs)
		},
	}
	list.Flags().IntVar(&page.Skip, "skip", 0, "vehicles to skip")
	list.Flags().IntVar(&page.Limit, "limit", 0, "maximum vehicles to return")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			v, err := a.client.Vehicles.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}

	return group("vehicles", "Fleet", list, get)
}

// ── Demand ───────────────────────────────────────────────────────────────────

func newDemandCmd(a *app) *cobra.Command {
	var req domain.ForecastRequest
	var warehouse int
	forecast := &cobra.Command{
		Use:   "forecast <sku>",
		Short: "Ask the backend for a demand forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.SKU = args[0]
			if warehouse > 0 {
				req.WarehouseID = &warehouse
			}
			fc, err := a.client.Demand.Forecast(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(fc)
		},
	}
	forecast.Flags().IntVar(&req.ForecastDays, "days", 30, "days to forecast")
	forecast.Flags().StringVar(&req.ModelType, "model", domain.ModelProphet, "prophet, lstm or xgboost")
	forecast.Flags().IntVar(&warehouse, "warehouse", 0, "restrict to one warehouse")

	var hf domain.HistoryFilter
	history := &cobra.Command{
		Use:   "history <sku>",
		Short: "Show the sales history of a SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.client.Demand.Historical(cmd.Context(), args[0], hf)
			if err != nil {
				return err
			}
			return a.print(h)
		},
	}
	history.Flags().IntVar(&hf.WarehouseID, "warehouse", 0, "restrict to one warehouse")
	history.Flags().IntVar(&hf.Days, "days", 0, "days of history")

	return group("demand", "Demand forecasting", forecast, history)
}

// ── Routes ───────────────────────────────────────────────────────────────────

func newRoutesCmd(a *app) *cobra.Command {
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one delivery route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			r, err := a.client.Routes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}

	var status string
	driver := &cobra.Command{
		Use:   "driver <driver-id>",
		Short: "List the routes assigned to a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			rs, err := a.client.Routes.ByDriver(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			return a.print(rs)
		},
	}
	driver.Flags().StringVar(&status, "status", "", "only routes in this status")

	return group("routes", "Delivery routes", get, driver)
}

// ── Anomalies ────────────────────────────────────────────────────────────────

func newAnomaliesCmd(a *app) *cobra.Command {
	var f domain.AnomalyFilter
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List anomalies, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			as, err := a.client.Anomalies.Recent(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.print(as)
		},
	}
	recent.Flags().IntVar(&f.Limit, "limit", 0, "maximum anomalies to return")
	recent.Flags().BoolVar(&f.Resolved, "resolved", false, "list resolved anomalies instead of open ones")

	resolve := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Mark an anomaly as resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			msg, err := a.client.Anomalies.Resolve(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(msg)
		},
	}

	return group("anomalies", "Anomaly detection", recent, resolve)
}

// ── Admin and reporting ──────────────────────────────────────────────────────

func newUsersCmd(a *app) *cobra.Command {
	usage := &cobra.Command{
		Use:   "usage",
		Short: "List users with their AI command usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.client.Users.ListWithUsage(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(rows)
		},
	}
	return group("users", "User administration", usage)
}

func newOrdersCmd(a *app) *cobra.Command {
	var f domain.OrderFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := a.client.Orders.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.print(orders)
		},
	}
	list.Flags().StringVar(&f.Status, "status", "", "only orders in this status")
	list.Flags().IntVar(&f.Limit, "limit", 0, "maximum orders to return")
	return group("orders", "Sales orders", list)
}

func newReportsCmd(a *app) *cobra.Command {
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.client.Reports.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(stats)
		},
	}
	return group("reports", "Reporting", dashboard)
}

func newAICmd(a *app) *cobra.Command {
	ask := &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a chat message to the AI assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := a.client.AI.Command(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.print(reply)
		},
	}
	return group("ai", "AI assistant", ask)
}
