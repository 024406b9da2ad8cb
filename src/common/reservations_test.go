package common

import (
	"cafe/src/models"
	"cafe/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ReservationSuite struct {
	suite.Suite
	DB    *gorm.DB
	User  *models.User
	Table *models.DiningTable
	Now   time.Time
}

func (s *ReservationSuite) SetupTest() {
	s.DB = setupDB(s.T())
	s.User = seedUser(s.T(), s.DB, "guest@cafe.test", types.ROLE_USER)
	s.Table = seedTable(s.T(), s.DB, "T1", types.TABLE_AVAILABLE)
	s.Now = time.Now().Truncate(time.Second)
}

func (s *ReservationSuite) reserve(tableID uint, at time.Time, minutes int) (*models.Reservation, error) {
	return CreateReservation(s.User.ID, &types.CreateReservationRequestBody{
		DiningTableID:   tableID,
		ReservationTime: at.Format(time.RFC3339),
		DurationMinutes: minutes,
	})
}

func (s *ReservationSuite) TestCreateReservesTable() {
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	s.Equal(types.RESERVATION_PENDING, r.Status)
	s.Equal(s.User.ID, r.UserID)
	s.Require().NotNil(r.DiningTable)
	s.Equal(types.TABLE_RESERVED, r.DiningTable.Status)
	s.True(r.ReservationTime.Equal(s.Now))
}

func (s *ReservationSuite) TestCreateRejectsUnknownRefs() {
	_, err := CreateReservation(999, &types.CreateReservationRequestBody{
		DiningTableID:   999,
		ReservationTime: s.Now.Format(time.RFC3339),
		DurationMinutes: 30,
	})
	var verr types.ValidationErrors
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr, "user_id")
	s.Contains(verr, "dining_table_id")
}

func (s *ReservationSuite) TestOverlappingWindowIsRejected() {
	_, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)

	_, err = s.reserve(s.Table.ID, s.Now.Add(30*time.Minute), 60)
	s.ErrorIs(err, types.ErrTableDoubleBooked)

	_, err = s.reserve(s.Table.ID, s.Now.Add(60*time.Minute), 60)
	s.NoError(err)
}

func (s *ReservationSuite) TestCancelledReservationDoesNotBlock() {
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	_, err = UpdateReservation(r.ID, &types.UpdateReservationRequestBody{Status: ptr(types.RESERVATION_CANCELLED)}, s.Now)
	s.Require().NoError(err)

	_, err = s.reserve(s.Table.ID, s.Now, 60)
	s.NoError(err)
}

func (s *ReservationSuite) TestCancelFreesTable() {
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)

	updated, err := UpdateReservation(r.ID, &types.UpdateReservationRequestBody{Status: ptr(types.RESERVATION_CANCELLED)}, s.Now)
	s.Require().NoError(err)
	s.Equal(types.RESERVATION_CANCELLED, updated.Status)
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, s.Table.ID))
}

func (s *ReservationSuite) TestCancelKeepsTableReservedForAnotherBooking() {
	first, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	_, err = s.reserve(s.Table.ID, s.Now.Add(2*time.Hour), 60)
	s.Require().NoError(err)

	_, err = UpdateReservation(first.ID, &types.UpdateReservationRequestBody{Status: ptr(types.RESERVATION_CANCELLED)}, s.Now)
	s.Require().NoError(err)
	s.Equal(types.TABLE_RESERVED, tableStatus(s.T(), s.DB, s.Table.ID))
}

func (s *ReservationSuite) TestMovingTableReleasesTheOldOne() {
	other := seedTable(s.T(), s.DB, "T2", types.TABLE_AVAILABLE)
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)

	updated, err := UpdateReservation(r.ID, &types.UpdateReservationRequestBody{DiningTableID: &other.ID}, s.Now)
	s.Require().NoError(err)
	s.Equal(other.ID, updated.DiningTableID)
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, s.Table.ID))
	s.Equal(types.TABLE_RESERVED, tableStatus(s.T(), s.DB, other.ID))
}

func (s *ReservationSuite) TestReleaseLeavesOccupiedTable() {
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	s.Require().NoError(setTableStatus(s.DB, s.Table.ID, types.TABLE_OCCUPIED))

	s.Require().NoError(DeleteReservation(r.ID, s.Now))
	s.Equal(types.TABLE_OCCUPIED, tableStatus(s.T(), s.DB, s.Table.ID))
}

func (s *ReservationSuite) TestDeleteFreesTableAndDetachesOrders() {
	r, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	item := seedItem(s.T(), s.DB, "Tea", "3")
	order, err := CreateOrder(s.User.ID, &types.CreateOrderRequestBody{
		OrderType:     types.ORDER_DINE_IN,
		ReservationID: &r.ID,
		PaymentMethod: types.PAYMENT_CASH,
		Items:         []types.OrderLineRequest{{ItemID: item.ID, Quantity: 1}},
	})
	s.Require().NoError(err)

	s.Require().NoError(DeleteReservation(r.ID, s.Now))
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, s.Table.ID))

	kept, err := GetOrder(order.ID)
	s.Require().NoError(err)
	s.Nil(kept.ReservationID)

	_, err = GetReservation(r.ID)
	s.ErrorIs(err, types.ErrNotFound)
}

func (s *ReservationSuite) TestUserReservations() {
	other := seedUser(s.T(), s.DB, "other@cafe.test", types.ROLE_USER)
	_, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	_, err = CreateReservation(s.User.ID, &types.CreateReservationRequestBody{
		UserID:          other.ID,
		DiningTableID:   s.Table.ID,
		ReservationTime: s.Now.Add(3 * time.Hour).Format(time.RFC3339),
		DurationMinutes: 60,
	})
	s.Require().NoError(err)

	mine, err := UserReservations(s.User.ID)
	s.Require().NoError(err)
	s.Len(mine, 1)

	all, err := ListReservations()
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ReservationSuite) TestRecomputeTableStatuses() {
	busy := seedTable(s.T(), s.DB, "T2", types.TABLE_OCCUPIED)
	stale := seedTable(s.T(), s.DB, "T3", types.TABLE_RESERVED)
	_, err := s.reserve(s.Table.ID, s.Now, 60)
	s.Require().NoError(err)
	s.Require().NoError(setTableStatus(s.DB, s.Table.ID, types.TABLE_AVAILABLE))

	changed, err := RecomputeTableStatuses(s.Now)
	s.Require().NoError(err)
	s.Equal(2, changed)
	s.Equal(types.TABLE_RESERVED, tableStatus(s.T(), s.DB, s.Table.ID))
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, stale.ID))
	s.Equal(types.TABLE_OCCUPIED, tableStatus(s.T(), s.DB, busy.ID))

	changed, err = RecomputeTableStatuses(s.Now)
	s.Require().NoError(err)
	s.Zero(changed)

	changed, err = RecomputeTableStatuses(s.Now.Add(61 * time.Minute))
	s.Require().NoError(err)
	s.Equal(1, changed)
	s.Equal(types.TABLE_AVAILABLE, tableStatus(s.T(), s.DB, s.Table.ID))
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}
