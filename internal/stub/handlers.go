package stub

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

const defaultRecentAnomalies = 50

func pathID(c echo.Context) (int, error) {
	var id int
	err := echo.PathParamsBinder(c).MustInt("id", &id).BindError()
	return id, err
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

func (s *server) currentUser(c echo.Context) (domain.User, error) {
	username, _ := c.Get(ctxUsername).(string)
	u, err := s.store.UserByName(username)
	if err != nil {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return u, nil
}

// ── Auth ─────────────────────────────────────────────────────────────────────

// login accepts the OAuth2 password form the dashboard posts as multipart.
func (s *server) login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "username and password are required")
	}

	user, ok := s.store.Authenticate(username, password)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username or password")
	}
	if !user.IsActive {
		return echo.NewHTTPError(http.StatusBadRequest, "Inactive user")
	}

	token, err := s.tokens.issue(user.Username, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.LoginResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *server) register(c echo.Context) error {
	var req domain.UserCreate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := s.store.AddUser(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (s *server) me(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ── Users ────────────────────────────────────────────────────────────────────

func (s *server) listUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Users())
}

func (s *server) getUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := s.store.User(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (s *server) updateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req domain.UserUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := s.store.UpdateUser(id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (s *server) userUsage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	usage, err := s.store.Usage(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usage)
}

func (s *server) auditLogs(c echo.Context) error {
	limit := 100
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.AuditLogs(limit))
}

// ── Inventory ────────────────────────────────────────────────────────────────

func (s *server) listInventory(c echo.Context) error {
	var f domain.InventoryFilter
	err := echo.QueryParamsBinder(c).
		Int("warehouse_id", &f.WarehouseID).
		String("sku", &f.SKU).
		Bool("low_stock", &f.LowStock).
		Int("skip", &f.Skip).
		Int("limit", &f.Limit).
		BindError()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.Items(f))
}

func (s *server) getInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := s.store.Item(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (s *server) createInventory(c echo.Context) error {
	var req domain.InventoryCreate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	item, err := s.store.AddItem(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (s *server) updateInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req domain.InventoryUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	item, err := s.store.UpdateItem(id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (s *server) deleteInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteItem(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *server) warehouseSummary(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sum, err := s.store.Summary(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

// ── Warehouses ───────────────────────────────────────────────────────────────

func (s *server) listWarehouses(c echo.Context) error {
	var skip, limit int
	if err := echo.QueryParamsBinder(c).Int("skip", &skip).Int("limit", &limit).BindError(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.Warehouses(skip, limit))
}

func (s *server) getWarehouse(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	wh, err := s.store.Warehouse(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wh)
}

func (s *server) createWarehouse(c echo.Context) error {
	var req domain.WarehouseCreate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s.store.AddWarehouse(req))
}

func (s *server) updateLayout(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req domain.LayoutUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	candidate := domain.Warehouse{ID: id, LayoutConfig: &req.LayoutConfig}
	if _, err := candidate.Layout(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "layout_config must be a JSON grid")
	}
	wh, err := s.store.SetLayout(id, req.LayoutConfig)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wh)
}

// ── Vehicles ─────────────────────────────────────────────────────────────────

func (s *server) listVehicles(c echo.Context) error {
	var skip, limit int
	if err := echo.QueryParamsBinder(c).Int("skip", &skip).Int("limit", &limit).BindError(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.Vehicles(skip, limit))
}

func (s *server) getVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	v, err := s.store.Vehicle(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (s *server) createVehicle(c echo.Context) error {
	var req domain.VehicleCreate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s.store.AddVehicle(req))
}

// ── Anomalies ────────────────────────────────────────────────────────────────

func (s *server) recentAnomalies(c echo.Context) error {
	f := domain.AnomalyFilter{Limit: defaultRecentAnomalies}
	err := echo.QueryParamsBinder(c).
		Int("limit", &f.Limit).
		Bool("resolved", &f.Resolved).
		BindError()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.RecentAnomalies(f))
}

func (s *server) resolveAnomaly(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.ResolveAnomaly(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.Message{Message: "Anomaly marked as resolved"})
}

// ── AI ───────────────────────────────────────────────────────────────────────

// aiCommand answers with an echo of the message and counts it against the
// caller's usage.
func (s *server) aiCommand(c echo.Context) error {
	var req domain.CommandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Message must not be empty")
	}

	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	s.store.RecordCommand(user.ID)

	return c.JSON(http.StatusOK, domain.CommandResponse{Response: "Received: " + msg})
}
