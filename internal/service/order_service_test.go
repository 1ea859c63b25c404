package service

import (
	"context"
	"testing"
	"time"

	dom "Platform/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[int64]dom.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]dom.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) Create(_ context.Context, userID int64, details string) (dom.Order, error) {
	o := dom.Order{ID: f.nextID, UserID: userID, Details: details, CreatedAt: time.Now()}
	f.nextID++
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (dom.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return dom.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]dom.Order, error) {
	var out []dom.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestOrderCreateAndGet(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), nil)

	o, err := svc.Create(context.Background(), 7, "2x coffee beans")
	require.NoError(t, err)
	require.Equal(t, int64(7), o.UserID)

	got, err := svc.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	require.Equal(t, o, got)
}

func TestOrderCreate_MissingDetails(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), nil)

	_, err := svc.Create(context.Background(), 7, "   ")
	require.ErrorIs(t, err, ErrMissingDetails)
}

func TestOrderGetByID_NotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), nil)

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderListByUser(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, nil)

	_, err := svc.Create(context.Background(), 1, "a")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, "b")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, "c")
	require.NoError(t, err)

	list, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
