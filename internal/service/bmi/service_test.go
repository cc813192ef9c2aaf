package bmi

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthtrack-api/internal/model"
)

type fakeBMIRepo struct {
	records map[string]*model.BMIRecord
}

func newFakeBMIRepo() *fakeBMIRepo {
	return &fakeBMIRepo{records: make(map[string]*model.BMIRecord)}
}

func (f *fakeBMIRepo) key(username, date string) string {
	return username + "-" + date
}

func (f *fakeBMIRepo) Upsert(_ context.Context, record *model.BMIRecord) error {
	cp := *record
	f.records[f.key(record.Username, record.Date)] = &cp
	return nil
}

func (f *fakeBMIRepo) Get(_ context.Context, username, date string) (*model.BMIRecord, error) {
	r, ok := f.records[f.key(username, date)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeBMIRepo) ListByUser(_ context.Context, username string) ([]*model.BMIRecord, error) {
	var out []*model.BMIRecord
	for _, r := range f.records {
		if r.Username == username {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func fixedClock(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func TestCompute(t *testing.T) {
	assert.InDelta(t, 22.857, Compute(70, 175), 0.001)
	assert.InDelta(t, 35.156, Compute(90, 160), 0.001)
	assert.InDelta(t, 17.301, Compute(50, 170), 0.001)
}

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{10, model.BMICategoryUnderweight},
		{18.49, model.BMICategoryUnderweight},
		{18.5, model.BMICategoryNormal},
		{22.99, model.BMICategoryNormal},
		{23, model.BMICategoryOverweight},
		{24.99, model.BMICategoryOverweight},
		{25, model.BMICategoryObese1},
		{29.99, model.BMICategoryObese1},
		{30, model.BMICategoryObese2},
		{55, model.BMICategoryObese2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.bmi).Category, "bmi=%v", tt.bmi)
	}
}

func TestCategorizeDetails(t *testing.T) {
	normal := Categorize(21)
	assert.Equal(t, "#2ecc71", normal.Color)
	assert.NotEmpty(t, normal.Advice)

	obese := Categorize(36)
	assert.Equal(t, "#c0392b", obese.Color)
	assert.NotEmpty(t, obese.Advice)
}

func TestRecord(t *testing.T) {
	repo := newFakeBMIRepo()
	svc := NewService(repo)
	svc.now = fixedClock("2026-03-14")

	result, err := svc.Record(context.Background(), "somsak", &model.BMIRequest{
		Height: 175,
		Weight: 70,
	})
	require.NoError(t, err)

	assert.InDelta(t, 22.86, result.BMI, 0.0001)
	assert.Equal(t, model.BMICategoryNormal, result.Category)
	assert.Equal(t, "2026-03-14", result.Date)
	assert.False(t, result.Replaced)

	stored, err := repo.Get(context.Background(), "somsak", "2026-03-14")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 70.0, stored.Weight)
}

func TestRecordSameDayReplaces(t *testing.T) {
	repo := newFakeBMIRepo()
	svc := NewService(repo)
	svc.now = fixedClock("2026-03-14")

	_, err := svc.Record(context.Background(), "somsak", &model.BMIRequest{Height: 175, Weight: 70})
	require.NoError(t, err)

	result, err := svc.Record(context.Background(), "somsak", &model.BMIRequest{Height: 175, Weight: 72})
	require.NoError(t, err)
	assert.True(t, result.Replaced)

	records, err := repo.ListByUser(context.Background(), "somsak")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 72.0, records[0].Weight)
}

func TestRecordNewDayAppends(t *testing.T) {
	repo := newFakeBMIRepo()
	svc := NewService(repo)

	svc.now = fixedClock("2026-03-14")
	_, err := svc.Record(context.Background(), "somsak", &model.BMIRequest{Height: 175, Weight: 70})
	require.NoError(t, err)

	svc.now = fixedClock("2026-03-15")
	result, err := svc.Record(context.Background(), "somsak", &model.BMIRequest{Height: 175, Weight: 71})
	require.NoError(t, err)
	assert.False(t, result.Replaced)

	records, err := repo.ListByUser(context.Background(), "somsak")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestTodayAndLatest(t *testing.T) {
	repo := newFakeBMIRepo()
	svc := NewService(repo)
	svc.now = fixedClock("2026-03-15")

	today, err := svc.Today(context.Background(), "somsak")
	require.NoError(t, err)
	assert.Nil(t, today)

	latest, err := svc.Latest(context.Background(), "somsak")
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, repo.Upsert(context.Background(), &model.BMIRecord{
		Username: "somsak", Date: "2026-03-14", Height: 175, Weight: 70, BMI: Compute(70, 175),
	}))

	today, err = svc.Today(context.Background(), "somsak")
	require.NoError(t, err)
	assert.Nil(t, today, "yesterday's record is not today's")

	latest, err = svc.Latest(context.Background(), "somsak")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "2026-03-14", latest.Date)
	assert.Equal(t, 175.0, latest.Height)
}

func TestHistoryOrdered(t *testing.T) {
	repo := newFakeBMIRepo()
	svc := NewService(repo)

	for _, date := range []string{"2026-03-15", "2026-03-13", "2026-03-14"} {
		require.NoError(t, repo.Upsert(context.Background(), &model.BMIRecord{
			Username: "somsak", Date: date, Height: 175, Weight: 70,
		}))
	}

	records, err := svc.History(context.Background(), "somsak")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-03-13", records[0].Date)
	assert.Equal(t, "2026-03-15", records[2].Date)
}
