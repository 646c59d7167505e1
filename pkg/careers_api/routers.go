package careers_api

import (
	"time"

	"github.com/agricom-careers/careers-api/pkg/careers_api/handler"
	"github.com/agricom-careers/careers-api/pkg/careers_api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var (
	apiVersionHeader = fizz.Header(
		"API-Version",
		"The API version of the response",
		"",
	)

	notFoundResponse = fizz.Response(
		"404",
		"Not Found",
		nil,
		nil,
		nil,
	)
)

// RouterConfig carries the externally supplied pieces the route tree needs.
type RouterConfig struct {
	Admin             middleware.AdminCredentials
	AuthFailureLimit  int
	AuthFailureWindow time.Duration
	CORSAllowOrigins  []string
}

func NewRouter(apiVersion string, cfg RouterConfig, controller *handler.ApplicationsAPIController) *fizz.Fizz {
	g := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	g.Use(cors.New(corsConfig))
	g.Use(middleware.RequestID())
	g.Use(APIVersionMiddleware(apiVersion))

	f := fizz.NewFromEngine(g)

	info := &openapi.Info{
		Title:       "Agricom Careers API",
		Description: "Job application intake and admin review for the Agricom careers portal",
		Version:     apiVersion,
	}

	root := f.Group("/api", "Careers API", "Agricom careers portal routes")

	// Applicant-facing and monitoring endpoints, no auth.
	root.POST("/applications",
		[]fizz.OperationOption{
			fizz.Summary("Submit a job application"),
			apiVersionHeader,
		},
		tonic.Handler(controller.SubmitApplication, 200),
	)
	root.GET("/health",
		[]fizz.OperationOption{fizz.Summary("Service liveness")},
		tonic.Handler(controller.Health, 200),
	)
	root.GET("/db-check",
		[]fizz.OperationOption{fizz.Summary("Database connectivity check")},
		tonic.Handler(controller.DBCheck, 200),
	)

	// Admin surface behind Basic Auth with attempt limiting.
	limiter := middleware.NewFailureLimiter(cfg.AuthFailureLimit, cfg.AuthFailureWindow)
	admin := root.Group("", "Admin", "Basic-Auth protected review surface",
		middleware.RequireAdmin(cfg.Admin, limiter))

	admin.GET("/applications",
		[]fizz.OperationOption{
			fizz.Summary("List submitted applications"),
			apiVersionHeader,
		},
		tonic.Handler(controller.ListApplications, 200),
	)
	admin.GET("/applications/:id",
		[]fizz.OperationOption{
			fizz.Summary("Retrieve one application"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(controller.RetrieveApplication, 200),
	)
	admin.PUT("/applications/:id",
		[]fizz.OperationOption{
			fizz.Summary("Update application status and notes"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(controller.UpdateApplicationStatus, 200),
	)
	admin.DELETE("/applications/:id",
		[]fizz.OperationOption{
			fizz.Summary("Delete an application"),
			notFoundResponse,
		},
		tonic.Handler(controller.DeleteApplication, 200),
	)

	admin.GET("/files/cv/:id",
		[]fizz.OperationOption{fizz.Summary("Download a CV"), notFoundResponse},
		tonic.Handler(controller.DownloadCV, 200),
	)
	admin.GET("/files/cv/:id/view",
		[]fizz.OperationOption{fizz.Summary("View a CV inline"), notFoundResponse},
		tonic.Handler(controller.ViewCV, 200),
	)
	admin.GET("/files/cover-letter/:id",
		[]fizz.OperationOption{fizz.Summary("Download a cover letter"), notFoundResponse},
		tonic.Handler(controller.DownloadCoverLetter, 200),
	)
	admin.GET("/files/cover-letter/:id/view",
		[]fizz.OperationOption{fizz.Summary("View a cover letter inline"), notFoundResponse},
		tonic.Handler(controller.ViewCoverLetter, 200),
	)

	admin.POST("/admin/reconcile",
		[]fizz.OperationOption{fizz.Summary("Run a schema reconciliation pass")},
		tonic.Handler(controller.ReconcileSchema, 200),
	)

	f.GET("/api/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
