package merchant

import (
	"fmt"
	"net/http"

	"marketplace-integrations/internal/adapter/provider"
)

func (a *Adapter) simulate(req provider.Request) (int, any) {
	switch {
	case req.Method == http.MethodPost && req.Path == "/orders":
		now := a.now().UTC()
		publicID := fmt.Sprintf("sim_pub_%d", now.UnixNano())
		return http.StatusCreated, order{
			ID:          fmt.Sprintf("sim_ord_%d", now.UnixNano()),
			PublicID:    publicID,
			State:       "PENDING",
			CheckoutURL: a.publicURL + "/demo/checkout/" + publicID,
			CreatedAt:   now,
		}

	case req.Method == http.MethodGet && req.Path == "/orders":
		return http.StatusOK, []order{}
	}
	return http.StatusNotFound, map[string]string{"message": "not found"}
}
