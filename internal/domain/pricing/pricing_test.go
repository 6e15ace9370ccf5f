package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

func TestComputeMonthly_IsExactMultiple(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	for _, n := range []int64{0, 1, 2, 7, 100} {
		got := e.ComputeMonthly(n)
		assert.Equal(t, float64(n)*24.50, got, "compute monthly for %d instances", n)
	}
}

func TestDiskMonthly_FallsBackToDefaultSize(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	known := entity.DiskSummary{Count: entity.KnownCount(2), TotalSizeGB: 50, SizesKnown: true}
	assert.InDelta(t, 2.00, e.DiskMonthly(known), 1e-9)

	unknown := entity.DiskSummary{Count: entity.KnownCount(3), SizesKnown: false}
	// 3 discos × 10 GB padrão × 0.040
	assert.InDelta(t, 1.20, e.DiskMonthly(unknown), 1e-9)
}

func TestBreakdown_TotalIsSumOfParts(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	counts := entity.ResourceCounts{
		ComputeInstances: entity.KnownCount(2),
		Disks:            entity.KnownCount(2),
		ForwardingRules:  entity.KnownCount(1),
	}
	disks := entity.DiskSummary{Count: entity.KnownCount(2), TotalSizeGB: 50, SizesKnown: true}

	bd := e.Breakdown(counts, disks)

	assert.InDelta(t, 49.00, bd.ComputeMonthly, 1e-9)
	assert.InDelta(t, 2.00, bd.DiskMonthly, 1e-9)
	assert.InDelta(t, 18.00, bd.LBMonthly, 1e-9)
	assert.InDelta(t, 69.00, bd.TotalMonthly, 1e-9)
	assert.InDelta(t, bd.ComputeMonthly+bd.DiskMonthly+bd.LBMonthly, bd.TotalMonthly, 1e-9)
}

func TestBreakdown_DailyAndHourlyDerivation(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	counts := entity.ResourceCounts{
		ComputeInstances: entity.KnownCount(5),
		ForwardingRules:  entity.KnownCount(2),
	}
	bd := e.Breakdown(counts, entity.DiskSummary{SizesKnown: true})

	assert.InDelta(t, bd.TotalMonthly/30, bd.TotalDaily, 1e-9)
	assert.InDelta(t, bd.TotalMonthly/720, bd.TotalHourly, 1e-9)
	// daily × 30 reconstrói o mensal dentro da tolerância de arredondamento
	assert.InDelta(t, bd.TotalMonthly, bd.TotalDaily*30, 0.01)
}

func TestBreakdown_ZeroResources(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	bd := e.Breakdown(entity.ResourceCounts{}, entity.DiskSummary{})

	assert.Zero(t, bd.ComputeMonthly)
	assert.Zero(t, bd.DiskMonthly)
	assert.Zero(t, bd.LBMonthly)
	assert.Zero(t, bd.TotalMonthly)
	assert.Zero(t, bd.TotalDaily)
	assert.Zero(t, bd.TotalHourly)
}

func TestConvert_ScenarioFromFixedRate(t *testing.T) {
	// 69.00 USD a 84.50 → ₹5830.50
	assert.InDelta(t, 5830.50, Convert(69.00, 84.50), 1e-9)
}

func TestConvert_IsIdempotentForSameInputs(t *testing.T) {
	first := Convert(12.345, 83.17)
	second := Convert(12.345, 83.17)
	assert.Equal(t, first, second)
}

func TestConvert_RoundsToTwoDecimals(t *testing.T) {
	got := Convert(0.333, 3.0)
	assert.Equal(t, 1.00, got)
	_, frac := math.Modf(got * 100)
	assert.InDelta(t, 0, frac, 1e-9)
}

func TestBurnDown_RemainingDays(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	bd := e.BurnDown(10, 2.30)
	assert.Equal(t, 80, bd.DaysRemaining)
	assert.Equal(t, 80*24, bd.HoursRemaining)
	assert.False(t, bd.LikelyExpired)
	assert.InDelta(t, 2.30*80, bd.ProjectedSpendUSD, 1e-9)
}

func TestBurnDown_NegativeDaysMeansLikelyExpired(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	bd := e.BurnDown(95, 1.00)
	assert.Equal(t, -5, bd.DaysRemaining)
	assert.True(t, bd.LikelyExpired)
	assert.Zero(t, bd.ProjectedSpendUSD)
}

func TestBurnDown_UnknownProjectAge(t *testing.T) {
	e := NewEngine(DefaultPriceTable())

	bd := e.BurnDown(-1, 1.00)
	assert.Zero(t, bd.DaysRemaining)
	assert.Zero(t, bd.HoursRemaining)
	assert.False(t, bd.LikelyExpired)
}

func TestPriceTable_InjectedPricesAreUsed(t *testing.T) {
	e := NewEngine(PriceTable{
		PerNodeMonthUSD: 10,
		PerGBMonthUSD:   1,
		PerRuleMonthUSD: 5,
		TrialCreditUSD:  100,
		TrialDays:       30,
		DefaultDiskGB:   20,
	})

	counts := entity.ResourceCounts{
		ComputeInstances: entity.KnownCount(1),
		Disks:            entity.KnownCount(1),
		ForwardingRules:  entity.KnownCount(1),
	}
	bd := e.Breakdown(counts, entity.DiskSummary{Count: entity.KnownCount(1)})

	assert.InDelta(t, 10.0, bd.ComputeMonthly, 1e-9)
	assert.InDelta(t, 20.0, bd.DiskMonthly, 1e-9)
	assert.InDelta(t, 5.0, bd.LBMonthly, 1e-9)
}
