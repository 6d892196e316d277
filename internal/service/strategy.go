package service

import "github.com/ascent-app/ascent-sync/models"

// ChooseStrategy maps the current connectivity and resource hints to an
// upload strategy. The offline preflight happens before strategy selection,
// so connectivity here is assumed online.
//
// A metered connection on a device under resource pressure (low battery,
// power-save mode) gets the batched strategy: smaller requests with an
// inter-batch delay. Every other combination uploads the full outbox at
// once.
func ChooseStrategy(connectivity models.Connectivity, hints models.ResourceHints) models.SyncStrategy {
	if connectivity == models.ConnectivityMetered && hints.Constrained() {
		return models.StrategyBatched
	}
	return models.StrategyImmediate
}
