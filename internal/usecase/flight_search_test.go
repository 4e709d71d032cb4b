package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luckylamd/flight-search-engine/internal/domain"
	"github.com/luckylamd/flight-search-engine/internal/infrastructure/timeutil"
	"github.com/luckylamd/flight-search-engine/test/mock"
	"github.com/luckylamd/flight-search-engine/test/testutil"
)

func searchTestCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "NYC",
		Destination:   "LON",
		DepartureDate: "2026-03-01",
		Adults:        1,
	}
}

func TestFlightSearchUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flights := []domain.Flight{
		resultTestFlight("expensive", 300, 60, 0, "BA"),
		resultTestFlight("cheap", 100, 60, 0, "AA"),
	}
	provider := mock.NewMockFlightProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), searchTestCriteria()).Return(&domain.SearchResult{
		Flights:      flights,
		HourlyPrices: domain.BucketHourly(flights),
	}, nil)

	uc := NewFlightSearchUseCase(provider, timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	resp, err := uc.Search(context.Background(), searchTestCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "expensive"}, flightIDs(resp.Flights))
	assert.Len(t, resp.HourlyPrices, domain.HourBuckets)
	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, "amadeus", resp.Metadata.Provider)
}

func TestFlightSearchUseCase_Search_AppliesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flights := []domain.Flight{
		resultTestFlight("direct", 300, 60, 0, "BA"),
		resultTestFlight("connection", 100, 180, 1, "AA"),
	}
	provider := mock.NewMockFlightProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&domain.SearchResult{
		Flights:      flights,
		HourlyPrices: domain.BucketHourly(flights),
	}, nil)

	uc := NewFlightSearchUseCase(provider, nil)
	resp, err := uc.Search(context.Background(), searchTestCriteria(), SearchOptions{
		Filters: &domain.FilterOptions{Stops: testutil.Ptr(0)},
		SortBy:  domain.SortCheapest,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, flightIDs(resp.Flights))
	assert.Equal(t, 1, resp.Metadata.TotalResults)
}

// When a filter eliminates everything, the response keeps the baseline
// hourly series instead of an all-zero one.
func TestFlightSearchUseCase_Search_EmptyFilterKeepsBaselineSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flights := []domain.Flight{resultTestFlight("only", 100, 60, 0, "BA")}
	baseline := domain.BucketHourly(flights)
	provider := mock.NewMockFlightProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&domain.SearchResult{
		Flights:      flights,
		HourlyPrices: baseline,
	}, nil)

	uc := NewFlightSearchUseCase(provider, nil)
	resp, err := uc.Search(context.Background(), searchTestCriteria(), SearchOptions{
		Filters: &domain.FilterOptions{Airlines: []string{"ZZ"}},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Flights)
	assert.Equal(t, baseline, resp.HourlyPrices)
}

func TestFlightSearchUseCase_Search_PropagatesProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamErr := errors.New("wrapped upstream failure")
	provider := mock.NewMockFlightProvider(ctrl)
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

	uc := NewFlightSearchUseCase(provider, nil)
	resp, err := uc.Search(context.Background(), searchTestCriteria(), DefaultSearchOptions())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestFlightSearchUseCase_Search_EmptyUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock.NewMockFlightProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&domain.SearchResult{
		Flights:      []domain.Flight{},
		HourlyPrices: domain.BucketHourly(nil),
	}, nil)

	uc := NewFlightSearchUseCase(provider, nil)
	resp, err := uc.Search(context.Background(), searchTestCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.NotNil(t, resp.Flights)
	assert.Empty(t, resp.Flights)
	assert.Len(t, resp.HourlyPrices, domain.HourBuckets)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
}
