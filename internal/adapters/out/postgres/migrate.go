package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// OutboxChannel is the LISTEN/NOTIFY channel signalled on every outbox insert.
const OutboxChannel = "outbox_messages"

// Models lists every persisted table in creation order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.TimelineEventDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// Migrate creates or updates the schema. On top of AutoMigrate it creates the
// partial unique indexes that allow a single active delivery per driver,
// vehicle and order, and the trigger that notifies relays of new outbox rows.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	active := activeStatusList()
	indexes := []struct{ name, column string }{
		{pgerr.ActiveDriverIndex, "driver_id"},
		{pgerr.ActiveVehicleIndex, "vehicle_id"},
		{pgerr.ActiveOrderIndex, "order_id"},
	}
	for _, idx := range indexes {
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON deliveries (%s) WHERE status IN (%s)",
			idx.name, idx.column, active,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}

	for _, stmt := range notifyTrigger() {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create outbox trigger: %w", err)
		}
	}
	return nil
}

func activeStatusList() string {
	codes := deliveryrepo.StatusCodes(delivery.NonTerminal())
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, strconv.Itoa(c))
	}
	return strings.Join(parts, ",")
}

func notifyTrigger() []string {
	return []string{
		`CREATE OR REPLACE FUNCTION notify_outbox_message() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify('` + OutboxChannel + `', NEW.id::text);
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS outbox_messages_notify ON outbox_messages`,
		`CREATE TRIGGER outbox_messages_notify AFTER INSERT ON outbox_messages
	FOR EACH ROW EXECUTE FUNCTION notify_outbox_message()`,
	}
}
