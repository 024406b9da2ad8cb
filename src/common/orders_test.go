package common

import (
	"cafe/src/models"
	"cafe/src/types"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderSuite struct {
	suite.Suite
	DB        *gorm.DB
	User      *models.User
	Espresso  *models.Item
	Croissant *models.Item
}

func (s *OrderSuite) SetupTest() {
	s.DB = setupDB(s.T())
	s.User = seedUser(s.T(), s.DB, "guest@cafe.test", types.ROLE_USER)
	s.Espresso = seedItem(s.T(), s.DB, "Espresso", "10")
	s.Croissant = seedItem(s.T(), s.DB, "Croissant", "5")
	OrderStatusHook = func(from, to types.OrderStatus) error { return nil }
}

func (s *OrderSuite) takeaway() *types.CreateOrderRequestBody {
	return &types.CreateOrderRequestBody{
		OrderType:     types.ORDER_TAKEAWAY,
		PaymentMethod: types.PAYMENT_CASH,
		Items: []types.OrderLineRequest{
			{ItemID: s.Espresso.ID, Quantity: 2},
			{ItemID: s.Croissant.ID, Quantity: 1},
		},
	}
}

func (s *OrderSuite) TestTotalIsSnapshotAtCreation() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(25).Equal(order.TotalPrice), "total was %s", order.TotalPrice)
	s.Len(order.Items, 2)
	s.Equal(s.User.ID, order.UserID)
	s.Equal(types.ORDER_PENDING, order.Status)

	s.Require().NoError(s.DB.Model(&models.Item{}).Where("id = ?", s.Espresso.ID).Update("price", decimal.NewFromInt(99)).Error)

	reloaded, err := GetOrder(order.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(25).Equal(reloaded.TotalPrice))
	s.True(reloaded.Total().Equal(reloaded.TotalPrice))
	s.True(decimal.NewFromInt(10).Equal(reloaded.Items[0].Price))
}

func (s *OrderSuite) TestDineInRejectsUnavailableTable() {
	table := seedTable(s.T(), s.DB, "T1", types.TABLE_OCCUPIED)
	body := s.takeaway()
	body.OrderType = types.ORDER_DINE_IN
	body.DiningTableID = &table.ID

	_, err := CreateOrder(s.User.ID, body)
	s.ErrorIs(err, types.ErrTableUnavailable)

	var count int64
	s.DB.Model(&models.OrderItem{}).Count(&count)
	s.Zero(count)
}

func (s *OrderSuite) TestDineInOnAvailableTable() {
	table := seedTable(s.T(), s.DB, "T1", types.TABLE_AVAILABLE)
	body := s.takeaway()
	body.OrderType = types.ORDER_DINE_IN
	body.DiningTableID = &table.ID
	body.Phone = ptr("01234567890")

	order, err := CreateOrder(s.User.ID, body)
	s.Require().NoError(err)
	s.Require().NotNil(order.DiningTable)
	s.Equal(table.ID, order.DiningTable.ID)
	s.Nil(order.Phone)
}

func (s *OrderSuite) TestDineInNeedsTableOrReservation() {
	body := s.takeaway()
	body.OrderType = types.ORDER_DINE_IN

	_, err := CreateOrder(s.User.ID, body)
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "dining_table_id")
}

func (s *OrderSuite) TestDineInWithReservationConfirmsIt() {
	table := seedTable(s.T(), s.DB, "T2", types.TABLE_AVAILABLE)
	reservation, err := CreateReservation(s.User.ID, &types.CreateReservationRequestBody{
		DiningTableID:   table.ID,
		ReservationTime: time.Now().Format(time.RFC3339),
		DurationMinutes: 60,
	})
	s.Require().NoError(err)
	s.Equal(types.TABLE_RESERVED, tableStatus(s.T(), s.DB, table.ID))

	body := s.takeaway()
	body.OrderType = types.ORDER_DINE_IN
	body.ReservationID = &reservation.ID

	order, err := CreateOrder(s.User.ID, body)
	s.Require().NoError(err)
	s.Require().NotNil(order.DiningTableID)
	s.Equal(table.ID, *order.DiningTableID)
	s.Require().NotNil(order.Reservation)
	s.Equal(types.RESERVATION_CONFIRMED, order.Reservation.Status)
	s.Equal(types.TABLE_RESERVED, tableStatus(s.T(), s.DB, table.ID))
}

func (s *OrderSuite) TestReservationOfAnotherUserIsRejected() {
	table := seedTable(s.T(), s.DB, "T3", types.TABLE_AVAILABLE)
	other := seedUser(s.T(), s.DB, "other@cafe.test", types.ROLE_USER)
	reservation, err := CreateReservation(other.ID, &types.CreateReservationRequestBody{
		DiningTableID:   table.ID,
		ReservationTime: time.Now().Format(time.RFC3339),
		DurationMinutes: 60,
	})
	s.Require().NoError(err)
	_, err = UpdateReservation(reservation.ID, &types.UpdateReservationRequestBody{Status: ptr(types.RESERVATION_CANCELLED)}, time.Now())
	s.Require().NoError(err)

	body := s.takeaway()
	body.OrderType = types.ORDER_DINE_IN
	body.ReservationID = &reservation.ID

	_, err = CreateOrder(s.User.ID, body)
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "reservation_id")

	var stored models.Reservation
	s.Require().NoError(s.DB.First(&stored, reservation.ID).Error)
	s.Equal(types.RESERVATION_CANCELLED, stored.Status)
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, table.ID))

	// staff placing the order on the owner's behalf may use it
	body.UserID = other.ID
	order, err := CreateOrder(s.User.ID, body)
	s.Require().NoError(err)
	s.Equal(other.ID, order.UserID)
	s.Equal(types.RESERVATION_CONFIRMED, order.Reservation.Status)
}

func (s *OrderSuite) TestDeliveryNeedsElevenDigitPhone() {
	body := s.takeaway()
	body.OrderType = types.ORDER_DELIVERY
	body.DeliveryAddress = ptr("12 Nile St")
	body.Phone = ptr("12345")

	_, err := CreateOrder(s.User.ID, body)
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "phone")

	body.Phone = ptr("01234567890")
	order, err := CreateOrder(s.User.ID, body)
	s.Require().NoError(err)
	s.Equal("01234567890", *order.Phone)
	s.Equal("12 Nile St", *order.DeliveryAddress)
}

func (s *OrderSuite) TestTakeawayClearsOtherFields() {
	table := seedTable(s.T(), s.DB, "T3", types.TABLE_AVAILABLE)
	body := s.takeaway()
	body.DiningTableID = &table.ID
	body.DeliveryAddress = ptr("somewhere")

	order, err := CreateOrder(s.User.ID, body)
	s.Require().NoError(err)
	s.Nil(order.DiningTableID)
	s.Nil(order.DeliveryAddress)
}

func (s *OrderSuite) TestUnknownItemIsRejected() {
	body := s.takeaway()
	body.Items = append(body.Items, types.OrderLineRequest{ItemID: 999, Quantity: 1})

	_, err := CreateOrder(s.User.ID, body)
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "items.2.id")

	var count int64
	s.DB.Model(&models.Order{}).Count(&count)
	s.Zero(count)
}

func (s *OrderSuite) TestUpdateReplacesLinesAtCurrentPrices() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	s.Require().NoError(s.DB.Model(&models.Item{}).Where("id = ?", s.Croissant.ID).Update("price", decimal.NewFromInt(7)).Error)

	updated, err := UpdateOrder(order.ID, &types.UpdateOrderRequestBody{
		Items: []types.OrderLineRequest{{ItemID: s.Croissant.ID, Quantity: 3}},
	})
	s.Require().NoError(err)
	s.Len(updated.Items, 1)
	s.True(decimal.NewFromInt(21).Equal(updated.TotalPrice), "total was %s", updated.TotalPrice)
}

func (s *OrderSuite) TestUpdateWithoutLinesKeepsTotal() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	updated, err := UpdateOrder(order.ID, &types.UpdateOrderRequestBody{PaymentMethod: ptr(types.PAYMENT_CARD)})
	s.Require().NoError(err)
	s.Equal(types.PAYMENT_CARD, updated.PaymentMethod)
	s.True(order.TotalPrice.Equal(updated.TotalPrice))
	s.Len(updated.Items, 2)
}

func (s *OrderSuite) TestUpdateWithEmptyLinesClearsOrder() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	updated, err := UpdateOrder(order.ID, &types.UpdateOrderRequestBody{Items: []types.OrderLineRequest{}})
	s.Require().NoError(err)
	s.Empty(updated.Items)
	s.True(decimal.Zero.Equal(updated.TotalPrice), "total was %s", updated.TotalPrice)

	var count int64
	s.DB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count)
	s.Zero(count)
}

func (s *OrderSuite) TestStatusChangesArePermissive() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	updated, err := UpdateOrder(order.ID, &types.UpdateOrderRequestBody{Status: ptr(types.ORDER_DELIVERED)})
	s.Require().NoError(err)
	s.Equal(types.ORDER_DELIVERED, updated.Status)

	updated, err = UpdateOrder(order.ID, &types.UpdateOrderRequestBody{Status: ptr(types.ORDER_PENDING)})
	s.Require().NoError(err)
	s.Equal(types.ORDER_PENDING, updated.Status)
}

func (s *OrderSuite) TestStatusHookCanRejectTransitions() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)
	OrderStatusHook = func(from, to types.OrderStatus) error {
		if to == types.ORDER_DELIVERED && from != types.ORDER_READY {
			return errors.New("order must be ready first")
		}
		return nil
	}

	_, err = UpdateOrder(order.ID, &types.UpdateOrderRequestBody{Status: ptr(types.ORDER_DELIVERED)})
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "status")
}

func (s *OrderSuite) TestUpdateChecksMergedOrderType() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	_, err = UpdateOrder(order.ID, &types.UpdateOrderRequestBody{OrderType: ptr(types.ORDER_DELIVERY)})
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "delivery_address")
	s.Contains(verr, "phone")

	updated, err := UpdateOrder(order.ID, &types.UpdateOrderRequestBody{
		OrderType:       ptr(types.ORDER_DELIVERY),
		DeliveryAddress: ptr("12 Nile St"),
		Phone:           ptr("01234567890"),
	})
	s.Require().NoError(err)
	s.Equal(types.ORDER_DELIVERY, updated.OrderType)
}

func (s *OrderSuite) TestUserOrders() {
	other := seedUser(s.T(), s.DB, "other@cafe.test", types.ROLE_USER)
	_, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)
	body := s.takeaway()
	body.UserID = other.ID
	_, err = CreateOrder(s.User.ID, body)
	s.Require().NoError(err)

	mine, err := UserOrders(s.User.ID)
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *OrderSuite) TestDeleteOrder() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)

	s.Require().NoError(DeleteOrder(order.ID))
	var lines int64
	s.DB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&lines)
	s.Zero(lines)
	_, err = GetOrder(order.ID)
	s.ErrorIs(err, types.ErrNotFound)

	s.ErrorIs(DeleteOrder(order.ID), types.ErrNotFound)
}

func (s *OrderSuite) TestDeleteOrderWithInvoiceIsRejected() {
	order, err := CreateOrder(s.User.ID, s.takeaway())
	s.Require().NoError(err)
	_, err = CreateInvoice(&types.CreateInvoiceRequestBody{
		OrderID:       order.ID,
		Amount:        &order.TotalPrice,
		PaymentMethod: types.PAYMENT_CASH,
	})
	s.Require().NoError(err)

	s.ErrorIs(DeleteOrder(order.ID), types.ErrOrderHasInvoice)
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}
