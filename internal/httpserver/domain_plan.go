package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	planHTTP "cooked-flow/internal/plan/delivery/http"
	planRepo "cooked-flow/internal/plan/repository"
	planSqlite "cooked-flow/internal/plan/repository/sqlite"
	planUC "cooked-flow/internal/plan/usecase"
)

// setupPlanDomain initializes the plan domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.sqliteDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupPlanDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository; without a configured store plans are computed only
	var repo planRepo.Repository
	if srv.sqliteDB != nil {
		repo = planSqlite.New(srv.sqliteDB, srv.l)
	}

	// 2. UseCase
	uc := planUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := planHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/plan/nutrition, /api/v1/plans
	planHTTP.RegisterRoutes(api, h)

	if repo == nil {
		srv.l.Warnf(ctx, "Plan domain registered without persistence")
	} else {
		srv.l.Infof(ctx, "Plan domain registered")
	}
	return nil
}
