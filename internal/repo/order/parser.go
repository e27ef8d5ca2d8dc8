package order_repo

import (
	"challengecart/internal/domain/order"

	"github.com/jackc/pgx/v5"
)

func parseOrderRow(row pgx.Row) (order.Order, error) {
	var m orderRow

	err := row.Scan(
		&m.ID, &m.OrderNumber,
		&m.Email, &m.FirstName, &m.LastName, &m.Address1, &m.City, &m.State, &m.Postcode, &m.Country,
		&m.PurchasePrice, &m.TotalPrice, &m.Currency, &m.DiscountCode,
		&m.PurchaseType, &m.IsInAppPurchase,
		&m.ProgramID, &m.PlatformSlug, &m.AccountSize, &m.TierID, &m.AddOns,
		&m.Status, &m.TransactionID, &m.Metadata,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}

	return m.toDomain()
}
