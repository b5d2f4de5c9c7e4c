package predict

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"croprecd/pkg/types"
)

// PredictBatch predicts every input without probability distributions. The
// batch is all-or-nothing: it is rejected before any inference if it holds
// more than MaxBatchSize items, any item fails the schema or names an unknown
// category, and the first inference failure fails the whole batch. Results
// keep input order and are counted only once the whole batch succeeded.
func (s *Service) PredictBatch(ctx context.Context, inputs []types.Input) ([]types.PredictionResult, error) {
	out, err := s.predictBatch(ctx, inputs)
	if err != nil {
		predictionErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		return nil, err
	}
	batchSize.Observe(float64(len(inputs)))
	return out, nil
}

func (s *Service) predictBatch(ctx context.Context, inputs []types.Input) ([]types.PredictionResult, error) {
	if !s.reg.Loaded() {
		return nil, notLoadedError{msg: "Models are not loaded. Please check the model files."}
	}
	if len(inputs) > MaxBatchSize {
		return nil, batchTooLargeError{size: len(inputs)}
	}
	var msgs []string
	for i, in := range inputs {
		err := ValidateInput(in)
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			msgs = append(msgs, fmt.Sprintf("[%d] %v", i, err))
			continue
		}
		for _, m := range ve.Messages {
			msgs = append(msgs, fmt.Sprintf("[%d] %s", i, m))
		}
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	vecs := make([][]float64, len(inputs))
	for i, in := range inputs {
		vec, err := s.prepare(ctx, in)
		if err != nil {
			return nil, err
		}
		vecs[i] = vec
	}

	outcomes := make([]outcome, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchWorkers)
	for i, vec := range vecs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := s.infer(vec)
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]types.PredictionResult, len(inputs))
	for i, o := range outcomes {
		predictionsTotal.WithLabelValues(o.crop).Inc()
		out[i] = o.result(inputs[i], false)
	}
	return out, nil
}
