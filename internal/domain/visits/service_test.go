package visits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain"
	"dentman/internal/domain/catalogs/discount"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeVisitRepo struct {
	visit      *Visit
	finalPrice *types.Money
}

func (f *fakeVisitRepo) Create(ctx context.Context, v *Visit) error { f.visit = v; return nil }

func (f *fakeVisitRepo) GetByID(ctx context.Context, visitID id.ID) (*Visit, error) {
	return f.GetForUpdate(ctx, visitID)
}

func (f *fakeVisitRepo) GetForUpdate(ctx context.Context, visitID id.ID) (*Visit, error) {
	if f.visit == nil || f.visit.ID != visitID {
		return nil, apperror.NewNotFound("visit", visitID.String())
	}
	return f.visit, nil
}

func (f *fakeVisitRepo) Update(ctx context.Context, v *Visit) error { f.visit = v; return nil }

func (f *fakeVisitRepo) SetDeletionMark(ctx context.Context, visitID id.ID, marked bool) error {
	f.visit.DeletionMark = marked
	return nil
}

func (f *fakeVisitRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Visit], error) {
	return domain.ListResult[*Visit]{Items: []*Visit{f.visit}, TotalCount: 1}, nil
}

func (f *fakeVisitRepo) SetDentists(ctx context.Context, visitID id.ID, dentistIDs []id.ID) error {
	f.visit.DentistIDs = dentistIDs
	return nil
}

func (f *fakeVisitRepo) AddDiscountLink(ctx context.Context, visitID, discountID id.ID) error {
	return nil
}

func (f *fakeVisitRepo) RemoveDiscountLink(ctx context.Context, visitID, discountID id.ID) (bool, error) {
	return f.visit.HasDiscount(discountID), nil
}

func (f *fakeVisitRepo) ClearDiscountLinks(ctx context.Context, visitID id.ID) ([]id.ID, error) {
	removed := f.visit.DiscountIDs
	return removed, nil
}

func (f *fakeVisitRepo) ListDiscountIDs(ctx context.Context, visitID id.ID) ([]id.ID, error) {
	return f.visit.DiscountIDs, nil
}

func (f *fakeVisitRepo) UpdateFinalPrice(ctx context.Context, visitID id.ID, finalPrice types.Money) error {
	f.finalPrice = &finalPrice
	return nil
}

type fakeDiscountRepo struct {
	discount.Repository
	byID map[id.ID]*discount.Discount
}

func (f *fakeDiscountRepo) GetManyByIDs(ctx context.Context, ids []id.ID) ([]*discount.Discount, error) {
	var out []*discount.Discount
	for _, discountID := range ids {
		if d, ok := f.byID[discountID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDiscountRepo) ApplyUsedCounterDelta(ctx context.Context, discountID id.ID, delta int) error {
	f.byID[discountID].UsedCounter += delta
	return nil
}

func validDiscount(name string, percent int) *discount.Discount {
	d := discount.NewDiscount("", name, percent, discount.TypeOther)
	d.IsCurrentlyValid = true
	return d
}

func invalidDiscount(name string) *discount.Discount {
	d := discount.NewDiscount("", name, 10, discount.TypeOther)
	d.IsCurrentlyValid = false
	return d
}

func testVisit(price string) *Visit {
	from := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	v := NewVisit(from, from.Add(time.Hour), types.MustMoney(price))
	v.Number = "VIS-2026-00001"
	v.FinalPrice = v.Price
	return v
}

func newTestService(v *Visit, discounts ...*discount.Discount) (*Service, *fakeVisitRepo, *fakeDiscountRepo) {
	visitRepo := &fakeVisitRepo{visit: v}
	discountRepo := &fakeDiscountRepo{byID: map[id.ID]*discount.Discount{}}
	for _, d := range discounts {
		discountRepo.byID[d.ID] = d
	}
	svc := NewService(visitRepo, discountRepo, fakeTxManager{}, nil, nil)
	return svc, visitRepo, discountRepo
}

func TestAddDiscounts_AppliesPricingFixture(t *testing.T) {
	v := testVisit("100.00")
	ten := validDiscount("ten off", 10)
	five := validDiscount("five off", 5)
	svc, visitRepo, _ := newTestService(v, ten, five)

	err := svc.AddDiscounts(context.Background(), v.ID, []id.ID{ten.ID, five.ID})

	require.NoError(t, err)
	require.NotNil(t, visitRepo.finalPrice)
	assert.True(t, visitRepo.finalPrice.Equal(types.MustMoney("85.50")))
	assert.True(t, v.FinalPrice.Equal(types.MustMoney("85.50")))
}

func TestAddDiscounts_BumpsCountersOnce(t *testing.T) {
	v := testVisit("100.00")
	ten := validDiscount("ten off", 10)
	svc, _, discountRepo := newTestService(v, ten)

	require.NoError(t, svc.AddDiscounts(context.Background(), v.ID, []id.ID{ten.ID}))
	assert.Equal(t, 1, discountRepo.byID[ten.ID].UsedCounter)

	// Re-adding an associated discount is a silent no-op, no second bump.
	require.NoError(t, svc.AddDiscounts(context.Background(), v.ID, []id.ID{ten.ID}))
	assert.Equal(t, 1, discountRepo.byID[ten.ID].UsedCounter)
}

func TestAddDiscounts_RejectsInvalidListingNames(t *testing.T) {
	v := testVisit("100.00")
	ten := validDiscount("ten off", 10)
	expired := invalidDiscount("old promo")
	gone := invalidDiscount("dead promo")
	svc, _, discountRepo := newTestService(v, ten, expired, gone)

	err := svc.AddDiscounts(context.Background(), v.ID, []id.ID{ten.ID, expired.ID, gone.ID})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "These discounts are currently invalid: old promo, dead promo", appErr.Message)

	// The whole call is rejected: the valid discount was not linked either.
	assert.Empty(t, v.DiscountIDs)
	assert.Equal(t, 0, discountRepo.byID[ten.ID].UsedCounter)
}

func TestAddDiscounts_StaleVerdictIsTrusted(t *testing.T) {
	// The boundary check reads the cached flag only. A discount whose
	// window expired since its last save still passes.
	v := testVisit("100.00")
	stale := validDiscount("stale", 10)
	yesterday := time.Now().AddDate(0, 0, -1)
	stale.ValidTo = &yesterday
	svc, _, _ := newTestService(v, stale)

	assert.NoError(t, svc.AddDiscounts(context.Background(), v.ID, []id.ID{stale.ID}))
}

func TestRemoveDiscount_DropsCounterAndReprices(t *testing.T) {
	v := testVisit("100.00")
	ten := validDiscount("ten off", 10)
	five := validDiscount("five off", 5)
	svc, visitRepo, discountRepo := newTestService(v, ten, five)
	ctx := context.Background()

	require.NoError(t, svc.AddDiscounts(ctx, v.ID, []id.ID{ten.ID, five.ID}))
	require.NoError(t, svc.RemoveDiscount(ctx, v.ID, five.ID))

	assert.Equal(t, 0, discountRepo.byID[five.ID].UsedCounter)
	assert.Equal(t, 1, discountRepo.byID[ten.ID].UsedCounter)
	assert.True(t, visitRepo.finalPrice.Equal(types.MustMoney("90.00")))
}

func TestRemoveDiscount_NotAssociatedIsNoOp(t *testing.T) {
	v := testVisit("100.00")
	ten := validDiscount("ten off", 10)
	svc, _, discountRepo := newTestService(v, ten)

	require.NoError(t, svc.RemoveDiscount(context.Background(), v.ID, ten.ID))

	assert.Equal(t, 0, discountRepo.byID[ten.ID].UsedCounter)
}

func TestClearDiscounts_ResetsToBasePrice(t *testing.T) {
	v := testVisit("200.00")
	ten := validDiscount("ten off", 10)
	five := validDiscount("five off", 5)
	svc, visitRepo, discountRepo := newTestService(v, ten, five)
	ctx := context.Background()

	require.NoError(t, svc.AddDiscounts(ctx, v.ID, []id.ID{ten.ID, five.ID}))
	require.NoError(t, svc.ClearDiscounts(ctx, v.ID))

	assert.Equal(t, 0, discountRepo.byID[ten.ID].UsedCounter)
	assert.Equal(t, 0, discountRepo.byID[five.ID].UsedCounter)
	assert.Empty(t, v.DiscountIDs)
	assert.True(t, visitRepo.finalPrice.Equal(types.MustMoney("200.00")))
}

func TestCreate_KeepsEIDAndStartsAtBasePrice(t *testing.T) {
	v := testVisit("120.00")
	svc, _, _ := newTestService(v)
	eid := v.EID

	require.NoError(t, svc.Create(context.Background(), v))

	assert.Equal(t, eid, v.EID)
	assert.True(t, v.FinalPrice.Equal(types.MustMoney("120.00")))
}

func TestUpdate_EIDIsImmutable(t *testing.T) {
	v := testVisit("120.00")
	svc, _, _ := newTestService(v)
	original := v.EID

	tampered := *v
	tampered.EID = id.New()
	require.NoError(t, svc.Update(context.Background(), &tampered))

	assert.Equal(t, original, tampered.EID)
}

func TestValidate_ScheduleWindow(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	v := NewVisit(from, from.Add(-time.Minute), types.MustMoney("10.00"))
	err := v.Validate(ctx)
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "scheduled_to", appErr.Violations[0].Field)

	// Equal bounds are allowed.
	v = NewVisit(from, from, types.MustMoney("10.00"))
	assert.NoError(t, v.Validate(ctx))

	// Actual times, when both set, must be ordered too.
	v = NewVisit(from, from.Add(time.Hour), types.MustMoney("10.00"))
	start := from.Add(10 * time.Minute)
	end := from.Add(5 * time.Minute)
	v.StartingTime = &start
	v.EndingTime = &end
	err = v.Validate(ctx)
	require.Error(t, err)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, "ending_time", appErr.Violations[0].Field)
}
