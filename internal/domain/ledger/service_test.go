package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain/catalogs/resource"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLedgerRepo struct {
	Repository
	created []*ResourceUpdate
}

func (f *fakeLedgerRepo) Create(ctx context.Context, u *ResourceUpdate) error {
	f.created = append(f.created, u)
	return nil
}

type fakeResourceRepo struct {
	resource.Repository
	res     *resource.Resource
	deltas  []types.Quantity
	lockHit int
}

func (f *fakeResourceRepo) GetForUpdate(ctx context.Context, resID id.ID) (*resource.Resource, error) {
	f.lockHit++
	if f.res == nil || f.res.ID != resID {
		return nil, apperror.NewNotFound("resource", resID.String())
	}
	return f.res, nil
}

func (f *fakeResourceRepo) ApplyQuantityDelta(ctx context.Context, resID id.ID, delta types.Quantity) error {
	f.deltas = append(f.deltas, delta)
	f.res.Quantity += delta
	return nil
}

func newTestService(res *resource.Resource) (*Service, *fakeLedgerRepo, *fakeResourceRepo) {
	ledgerRepo := &fakeLedgerRepo{}
	resourceRepo := &fakeResourceRepo{res: res}
	svc := NewService(ledgerRepo, resourceRepo, fakeTxManager{}, nil)
	return svc, ledgerRepo, resourceRepo
}

func stockedResource(qty string) *resource.Resource {
	r := resource.NewResource("RES-001", "Composite")
	r.Quantity = types.MustQuantity(qty)
	return r
}

func numberedUpdate(resourceID string, amount string, isDelivery bool) *ResourceUpdate {
	u := NewResourceUpdate(resourceID, types.MustQuantity(amount), isDelivery)
	u.Number = "RUP-2026-00001"
	return u
}

func TestRecordUpdate_DeliveryIncreasesQuantity(t *testing.T) {
	res := stockedResource("10.0000000")
	svc, ledgerRepo, resourceRepo := newTestService(res)

	u := numberedUpdate(res.ID.String(), "2.5000000", true)
	err := svc.RecordUpdate(context.Background(), u)

	require.NoError(t, err)
	require.Len(t, ledgerRepo.created, 1)
	require.Len(t, resourceRepo.deltas, 1)
	assert.Equal(t, "2.5000000", resourceRepo.deltas[0].String())
	assert.Equal(t, "12.5000000", res.Quantity.String())
}

func TestRecordUpdate_ConsumptionDecreasesQuantity(t *testing.T) {
	res := stockedResource("10.0000000")
	svc, _, resourceRepo := newTestService(res)

	u := numberedUpdate(res.ID.String(), "4.0000000", false)
	err := svc.RecordUpdate(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "-4.0000000", resourceRepo.deltas[0].String())
	assert.Equal(t, "6.0000000", res.Quantity.String())
}

func TestRecordUpdate_ConsumptionToExactlyZeroIsAllowed(t *testing.T) {
	res := stockedResource("4.0000000")
	svc, _, _ := newTestService(res)

	u := numberedUpdate(res.ID.String(), "4.0000000", false)
	err := svc.RecordUpdate(context.Background(), u)

	require.NoError(t, err)
	assert.True(t, res.Quantity.IsZero())
}

func TestRecordUpdate_OverdrawRejected(t *testing.T) {
	res := stockedResource("3.0000000")
	svc, ledgerRepo, resourceRepo := newTestService(res)

	u := numberedUpdate(res.ID.String(), "3.0000001", false)
	err := svc.RecordUpdate(context.Background(), u)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientResource, appErr.Code)
	assert.Equal(t, "You can't use more resource than you have", appErr.Message)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "amount_change", appErr.Violations[0].Field)

	// Nothing was written and the quantity is untouched.
	assert.Empty(t, ledgerRepo.created)
	assert.Empty(t, resourceRepo.deltas)
	assert.Equal(t, "3.0000000", res.Quantity.String())
}

func TestRecordUpdate_DeliverySkipsOverdrawCheck(t *testing.T) {
	res := stockedResource("0.0000000")
	svc, _, _ := newTestService(res)

	u := numberedUpdate(res.ID.String(), "100.0000000", true)
	err := svc.RecordUpdate(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "100.0000000", res.Quantity.String())
}

func TestRecordUpdate_ChecksRunAgainstLockedRow(t *testing.T) {
	res := stockedResource("1.0000000")
	svc, _, resourceRepo := newTestService(res)

	u := numberedUpdate(res.ID.String(), "1.0000000", false)
	require.NoError(t, svc.RecordUpdate(context.Background(), u))

	assert.Equal(t, 1, resourceRepo.lockHit)
}

func TestRecordUpdate_ValidationErrors(t *testing.T) {
	res := stockedResource("1.0000000")
	svc, _, _ := newTestService(res)
	ctx := context.Background()

	// Missing resource reference.
	noRes := &ResourceUpdate{AmountChange: types.MustQuantity("1.0000000")}
	noRes.Document = NewResourceUpdate(res.ID.String(), 1, true).Document
	noRes.ResourceID = nil
	assert.Error(t, svc.RecordUpdate(ctx, noRes))

	// Zero magnitude.
	zero := numberedUpdate(res.ID.String(), "0.0000000", true)
	assert.Error(t, svc.RecordUpdate(ctx, zero))

	// Unknown resource.
	missing := numberedUpdate(id.New().String(), "1.0000000", true)
	err := svc.RecordUpdate(ctx, missing)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
