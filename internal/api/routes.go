package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/api/middleware"
	"github.com/rs/cors"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/generate").
			To(handler.Generate).
			Doc("Generate test questions for one document").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(GenerateRequest{}).
			Writes(QuestionsResponse{}).
			Returns(200, "OK", QuestionsResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate/comparison").
			To(handler.GenerateComparison).
			Doc("Generate cross-document comparison questions").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(ComparisonRequest{}).
			Writes(QuestionsResponse{}).
			Returns(200, "OK", QuestionsResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Evaluate).
			Doc("Grade an answer against the expected answer").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(EvaluateRequest{}).
			Writes(EvaluateResponse{}).
			Returns(200, "OK", EvaluateResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "RAG Evaluator API",
			Description: "Test question generation and answer grading",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "generate", Description: "Question generation"}},
		{TagProps: spec.TagProps{Name: "evaluate", Description: "Answer grading"}},
	}
}

// NewContainer wires filters, routes, the OpenAPI document and, when
// metrics is non-nil, GET /metrics.
func NewContainer(handler *Handler, metrics http.Handler) *restful.Container {
	container := restful.NewContainer()

	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	if metrics != nil {
		container.Handle("/metrics", metrics)
	}
	return container
}

// WithCORS wraps h with a permissive CORS policy.
func WithCORS(h http.Handler) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return corsHandler.Handler(h)
}
