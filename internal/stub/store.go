package stub

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

var (
	errUserExists = errors.New("username already registered")
	errNoUser     = errors.New("user not found")
	errNoItem     = errors.New("inventory item not found")
	errNoSite     = errors.New("warehouse not found")
	errNoVehicle  = errors.New("vehicle not found")
	errNoAnomaly  = errors.New("anomaly not found")
	errUsageDown  = errors.New("usage counters unavailable")
)

type account struct {
	user         domain.User
	passwordHash string
}

// Store is the stub backend's in-memory state. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	nextID     int
	accounts   map[int]*account
	usage      map[int]domain.Usage
	usageDown  map[int]bool
	inventory  map[int]domain.InventoryItem
	warehouses map[int]domain.Warehouse
	vehicles   map[int]domain.Vehicle
	anomalies  map[int]domain.Anomaly
	audit      []domain.AuditLog

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[int]*account),
		usage:      make(map[int]domain.Usage),
		usageDown:  make(map[int]bool),
		inventory:  make(map[int]domain.InventoryItem),
		warehouses: make(map[int]domain.Warehouse),
		vehicles:   make(map[int]domain.Vehicle),
		anomalies:  make(map[int]domain.Anomaly),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

func (s *Store) logAction(userID *int, action, details string) {
	s.audit = append(s.audit, domain.AuditLog{
		ID:        len(s.audit) + 1,
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: s.now(),
	})
}

// ── Accounts ─────────────────────────────────────────────────────────────────

// AddUser registers an account. Role defaults to "manager".
func (s *Store) AddUser(in domain.UserCreate) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.user.Username == in.Username || a.user.Email == in.Email {
			return domain.User{}, errUserExists
		}
	}

	role := in.Role
	if role == "" {
		role = "manager"
	}
	created := s.now()
	u := domain.User{
		ID:        s.id(),
		Email:     in.Email,
		Username:  in.Username,
		FullName:  in.FullName,
		Role:      role,
		IsActive:  true,
		CreatedAt: &created,
	}
	s.accounts[u.ID] = &account{user: u, passwordHash: string(hash)}
	s.usage[u.ID] = domain.Usage{UserID: u.ID}
	s.logAction(&u.ID, "register", u.Username)
	return u, nil
}

// Authenticate checks a username/password pair.
func (s *Store) Authenticate(username, password string) (domain.User, bool) {
	s.mu.RLock()
	var found *account
	for _, a := range s.accounts {
		if a.user.Username == username {
			found = a
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return domain.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(found.passwordHash), []byte(password)) != nil {
		return domain.User{}, false
	}
	return found.user, true
}

func (s *Store) UserByName(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.user.Username == username {
			return a.user, nil
		}
	}
	return domain.User{}, errNoUser
}

func (s *Store) User(id int) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.User{}, errNoUser
	}
	return a.user, nil
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateUser(id int, in domain.UserUpdate) (domain.User, error) {
	var hash []byte
	if in.Password != nil {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.MinCost); err != nil {
			return domain.User{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.User{}, errNoUser
	}
	if in.Role != nil {
		a.user.Role = *in.Role
	}
	if in.IsActive != nil {
		a.user.IsActive = *in.IsActive
	}
	if in.Is2FAEnabled != nil {
		a.user.Is2FAEnabled = *in.Is2FAEnabled
	}
	if in.FullName != nil {
		a.user.FullName = *in.FullName
	}
	if hash != nil {
		a.passwordHash = string(hash)
	}
	s.logAction(&id, "update_user", a.user.Username)
	return a.user, nil
}

// Usage returns a user's AI command counters.
func (s *Store) Usage(id int) (domain.Usage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usageDown[id] {
		return domain.Usage{}, errUsageDown
	}
	u, ok := s.usage[id]
	if !ok {
		return domain.Usage{}, errNoUser
	}
	return u, nil
}

// BreakUsage makes usage lookups for id fail, for exercising partial failures.
func (s *Store) BreakUsage(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usageDown[id] = true
}

// RecordCommand counts one AI command issued by the user.
func (s *Store) RecordCommand(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.usage[userID]
	u.UserID = userID
	u.TotalRequests++
	u.Requests24h++
	s.usage[userID] = u
}

// AuditLogs returns the newest entries first.
func (s *Store) AuditLogs(limit int) []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AuditLog, 0, len(s.audit))
	for i := len(s.audit) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, s.audit[i])
	}
	return out
}

// ── Inventory ────────────────────────────────────────────────────────────────

func (s *Store) AddItem(in domain.InventoryCreate) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.warehouses[in.WarehouseID]; !ok {
		return domain.InventoryItem{}, errNoSite
	}
	item := domain.InventoryItem{
		ID:           s.id(),
		SKU:          in.SKU,
		ProductName:  in.ProductName,
		Category:     in.Category,
		Quantity:     in.Quantity,
		ReorderPoint: in.ReorderPoint,
		UnitPrice:    in.UnitPrice,
		WarehouseID:  in.WarehouseID,
		UpdatedAt:    s.now(),
	}
	s.inventory[item.ID] = item
	return item, nil
}

func (s *Store) Item(id int) (domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.inventory[id]
	if !ok {
		return domain.InventoryItem{}, errNoItem
	}
	return item, nil
}

func (s *Store) Items(f domain.InventoryFilter) []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventoryItem, 0, len(s.inventory))
	for _, item := range s.inventory {
		if f.WarehouseID != 0 && item.WarehouseID != f.WarehouseID {
			continue
		}
		if f.SKU != "" && item.SKU != f.SKU {
			continue
		}
		if f.LowStock && item.Quantity > item.ReorderPoint {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Skip, f.Limit)
}

func (s *Store) UpdateItem(id int, in domain.InventoryUpdate) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.inventory[id]
	if !ok {
		return domain.InventoryItem{}, errNoItem
	}
	if in.Quantity != nil {
		if *in.Quantity > item.Quantity {
			restocked := s.now()
			item.LastRestocked = &restocked
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.UnitPrice != nil {
		item.UnitPrice = in.UnitPrice
	}
	item.UpdatedAt = s.now()
	s.inventory[id] = item
	return item, nil
}

func (s *Store) DeleteItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[id]; !ok {
		return errNoItem
	}
	delete(s.inventory, id)
	return nil
}

// Summary aggregates the inventory of one warehouse.
func (s *Store) Summary(warehouseID int) (domain.WarehouseSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wh, ok := s.warehouses[warehouseID]
	if !ok {
		return domain.WarehouseSummary{}, errNoSite
	}

	total := decimal.Zero
	sum := domain.WarehouseSummary{WarehouseID: wh.ID, WarehouseName: wh.Name}
	for _, item := range s.inventory {
		if item.WarehouseID != warehouseID {
			continue
		}
		sum.TotalItems++
		sum.TotalQuantity += item.Quantity
		if item.Quantity <= item.ReorderPoint {
			sum.LowStockItems++
		}
		if item.UnitPrice != nil {
			total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	sum.TotalValue = domain.NewMoney(total)
	return sum, nil
}

// ── Warehouses ───────────────────────────────────────────────────────────────

func (s *Store) AddWarehouse(in domain.WarehouseCreate) domain.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	lat, lon := in.Latitude, in.Longitude
	wh := domain.Warehouse{
		ID:        s.id(),
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		City:      in.City,
		Country:   in.Country,
		Latitude:  &lat,
		Longitude: &lon,
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if in.Capacity > 0 {
		capacity := in.Capacity
		wh.Capacity = &capacity
	}
	s.warehouses[wh.ID] = wh
	return wh
}

func (s *Store) Warehouse(id int) (domain.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wh, ok := s.warehouses[id]
	if !ok {
		return domain.Warehouse{}, errNoSite
	}
	return wh, nil
}

func (s *Store) Warehouses(skip, limit int) []domain.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Warehouse, 0, len(s.warehouses))
	for _, wh := range s.warehouses {
		out = append(out, wh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, skip, limit)
}

func (s *Store) SetLayout(id int, layout string) (domain.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wh, ok := s.warehouses[id]
	if !ok {
		return domain.Warehouse{}, errNoSite
	}
	wh.LayoutConfig = &layout
	s.warehouses[id] = wh
	return wh, nil
}

// ── Fleet ────────────────────────────────────────────────────────────────────

func (s *Store) AddVehicle(in domain.VehicleCreate) domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.Vehicle{
		ID:            s.id(),
		VehicleNumber: in.VehicleNumber,
		VehicleType:   in.VehicleType,
		Capacity:      in.Capacity,
		FuelType:      in.FuelType,
		Status:        "available",
		CreatedAt:     s.now(),
	}
	s.vehicles[v.ID] = v
	return v
}

func (s *Store) Vehicle(id int) (domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[id]
	if !ok {
		return domain.Vehicle{}, errNoVehicle
	}
	return v, nil
}

func (s *Store) Vehicles(skip, limit int) []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, skip, limit)
}

// ── Anomalies ────────────────────────────────────────────────────────────────

// AddAnomaly records a finding as the detectors would.
func (s *Store) AddAnomaly(a domain.Anomaly) domain.Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	if a.DetectedAt.IsZero() {
		a.DetectedAt = s.now()
	}
	s.anomalies[a.ID] = a
	return a
}

// RecentAnomalies returns anomalies whose resolved flag matches, newest first.
func (s *Store) RecentAnomalies(f domain.AnomalyFilter) []domain.Anomaly {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Anomaly, 0, len(s.anomalies))
	for _, a := range s.anomalies {
		if a.Resolved == f.Resolved {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DetectedAt.After(out[j].DetectedAt) })
	return paginate(out, 0, f.Limit)
}

func (s *Store) ResolveAnomaly(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.anomalies[id]
	if !ok {
		return errNoAnomaly
	}
	a.Resolved = true
	s.anomalies[id] = a
	return nil
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	if skip > 0 {
		items = items[skip:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
