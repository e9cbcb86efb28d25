package main

import (
	"github.com/julienschmidt/httprouter"

	"careerdesk/internal/careers/events"
	careerhandler "careerdesk/internal/careers/handler"
	"careerdesk/internal/careers/normalizer"
	"careerdesk/internal/careers/repository"
	careerservice "careerdesk/internal/careers/service"
	"careerdesk/internal/careers/validator"
	interviewhandler "careerdesk/internal/interview/handler"
	interviewservice "careerdesk/internal/interview/service"
	"careerdesk/pkg/app"
	"careerdesk/pkg/client"
	"careerdesk/pkg/config"
)

const ServiceName = "careers"

// apiHandlers groups the routers this service exposes behind one handler.
type apiHandlers struct {
	careers   *careerhandler.CareerHandler
	interview *interviewhandler.GeneratorHandler
}

func (h *apiHandlers) RegisterRoutes(router *httprouter.Router) {
	h.careers.RegisterRoutes(router)
	h.interview.RegisterRoutes(router)
}

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Careers service")

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) *apiHandlers {
	careerValidator := validator.NewCareerValidator(cfg.Log)
	questionNormalizer := normalizer.New(cfg.DefaultCurrency)
	careerRepo := repository.NewMongoCareerRepository(cfg)
	orgRepo := repository.NewMongoOrganizationRepository(cfg)

	careerService := careerservice.NewCareerService(
		careerRepo,
		orgRepo,
		questionNormalizer,
		careerValidator,
		publisher,
		cfg,
	)

	llmClient := client.NewLLMClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	generatorService := interviewservice.NewGeneratorService(llmClient, cfg.Log)

	cfg.Log.Info("Careers service initialized", "database", cfg.MongoDatabaseName)

	return &apiHandlers{
		careers:   careerhandler.NewCareerHandler(careerService, cfg.Log),
		interview: interviewhandler.NewGeneratorHandler(generatorService, cfg.Log),
	}
}
