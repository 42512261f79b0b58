package services

import (
	"context"
	"fmt"
	"time"

	"github.com/formlab/formlab/internal/store"
	"github.com/formlab/formlab/logger"
	"github.com/formlab/formlab/types"
	"go.uber.org/zap"
)

type HealthService struct {
	api       *ApiService
	userStore store.UserStore
	version   string
	startTime time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(api *ApiService, userStore store.UserStore, version string) *HealthService {
	return &HealthService{
		api:       api,
		userStore: userStore,
		version:   version,
		startTime: time.Now(),
		log:       logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	// Check simulated API
	apiStatus := h.checkAPI(ctx)
	components["api"] = apiStatus
	if apiStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	// Check user store
	storeStatus := h.checkUserStore(ctx)
	components["user_store"] = storeStatus
	if storeStatus.Status == types.HealthStatusDown && overallStatus != types.HealthStatusDown {
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkAPI(ctx context.Context) types.HealthComponent {
	resp, err := h.api.HealthCheck(ctx)
	if err != nil {
		h.log.Errorw("API health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "API unreachable",
		}
	}
	if !resp.Success {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: resp.Message,
		}
	}
	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}

func (h *HealthService) checkUserStore(ctx context.Context) types.HealthComponent {
	count, err := h.userStore.Count(ctx)
	if err != nil {
		h.log.Errorw("User store health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "User store unavailable",
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: fmt.Sprintf("%d users", count),
	}
}
