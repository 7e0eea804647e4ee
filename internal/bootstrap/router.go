package bootstrap

import (
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/linguahub/admin-console-backend/config"
	adminhttp "github.com/linguahub/admin-console-backend/internal/admin/http"
	"github.com/linguahub/admin-console-backend/internal/admin/identity"
	"github.com/linguahub/admin-console-backend/internal/admin/middleware"
	"github.com/linguahub/admin-console-backend/internal/admin/repository"
	"github.com/linguahub/admin-console-backend/internal/admin/service"
	httpapi "github.com/linguahub/admin-console-backend/internal/api/http"
	apimiddleware "github.com/linguahub/admin-console-backend/internal/api/http/middleware"
	"github.com/linguahub/admin-console-backend/internal/mailer"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Config      *config.Config
	AuthClient  *auth.Client
	DBClient    *db.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(BuildCORS(&dep.Config.CORS)))
	r.Use(apimiddleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DBClient)
	healthHandler.RegisterRoutes(r)

	provider := identity.NewFirebaseProvider(dep.AuthClient)
	store := repository.NewRTDBStore(dep.DBClient)

	var mail mailer.Mailer = mailer.NewLogMailer()
	if dep.Config.MailEnabled() {
		mail = mailer.NewSMTPMailer(dep.Config.SMTP)
	}

	var verifier middleware.TokenVerifier = middleware.PresenceVerifier{}
	if dep.Config.Auth.Mode == config.AuthModeFirebase {
		verifier = middleware.NewFirebaseVerifier(dep.AuthClient)
	}

	adminService := service.NewAdminService(provider, store, mail)
	adminHandler := adminhttp.New(adminService)

	adminGroup := r.Group("/api/admin")
	adminHandler.Register(adminGroup, verifier)

	return r
}
