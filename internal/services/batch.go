package services

import (
	"context"
	"sync"

	"fleet-ai-service/internal/domain"
)

// Bound on concurrent batch entries; each is cheap, bounded-time work.
const batchConcurrency = 5

// One entry of a batch optimization request: an ETA request and a route
// request for the same planned trip.
type BatchItem struct {
	RouteID          any
	Trip             TripFeatures
	StartLatitude    float64
	StartLongitude   float64
	EndLatitude      float64
	EndLongitude     float64
	OptimizationType string
}

// Result for one batch entry. Entries are independent: a failed entry
// carries its error without affecting the rest of the batch.
type BatchResult struct {
	RouteID any
	ETA     *domain.ETAPrediction
	Route   *domain.RoutePlan
	Err     error
}

// BatchOptimizer fans ETA prediction and route estimation out over a list
// of trips. There is no shared state between entries beyond the immutable
// current model, so entries run concurrently under a small semaphore.
type BatchOptimizer struct {
	predictor *Predictor
	routes    *RouteEstimator
}

func NewBatchOptimizer(predictor *Predictor, routes *RouteEstimator) *BatchOptimizer {
	return &BatchOptimizer{predictor: predictor, routes: routes}
}

// Optimize returns one result per item, in input order.
func (b *BatchOptimizer) Optimize(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))

	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item BatchItem) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			results[i].RouteID = item.RouteID

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}

			eta, err := b.predictor.Predict(item.Trip)
			if err != nil {
				results[i].Err = err
				return
			}

			results[i].ETA = eta
			results[i].Route = b.routes.Estimate(
				item.StartLatitude, item.StartLongitude,
				item.EndLatitude, item.EndLongitude,
				item.OptimizationType,
			)
		}(i, item)
	}

	wg.Wait()
	return results
}
