package generation

import (
	"context"

	"github.com/pantryloom/v1/internal/domain/recipe"
	"github.com/pantryloom/v1/internal/domain/shared"
	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/pantryloom/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// GenerationService implements the recipe generation pipeline
type GenerationService struct {
	client         outbound.ChatCompletionClient
	catalogService inbound.CatalogService
	pantryService  inbound.PantryService
	recipeService  inbound.RecipeService
	logger         *zap.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	client outbound.ChatCompletionClient,
	catalogService inbound.CatalogService,
	pantryService inbound.PantryService,
	recipeService inbound.RecipeService,
	logger *zap.Logger,
) inbound.GenerationService {
	return &GenerationService{
		client:         client,
		catalogService: catalogService,
		pantryService:  pantryService,
		recipeService:  recipeService,
		logger:         logger.Named("generation-service"),
	}
}

// GenerateRecipe runs the full pipeline: prompt, model call, parse,
// persist. Each stage's failure aborts the pipeline; nothing is
// persisted unless parsing succeeded in full.
func (s *GenerationService) GenerateRecipe(ctx context.Context, req inbound.GenerateRecipeRequest) (*recipe.Recipe, error) {
	pctx, err := s.buildPromptContext(ctx)
	if err != nil {
		return nil, err
	}

	var stock []inbound.PantryStock
	if req.UsePantry {
		stock, err = s.pantryService.Summary(ctx)
		if err != nil {
			return nil, err
		}
	}

	requested := make([]string, len(req.Ingredients))
	for i, name := range req.Ingredients {
		requested[i] = shared.NormalizeName(name)
	}

	systemPrompt := BuildSystemPrompt(pctx)
	userPrompt := BuildUserPrompt(req.Prompt, requested, stock)

	s.logger.Info("Requesting recipe from model",
		zap.Int("catalog_ingredients", len(pctx.IngredientNames)),
		zap.Int("requested_ingredients", len(requested)),
		zap.Int("pantry_ingredients", len(stock)),
		zap.Bool("has_preference", req.Prompt != ""),
	)

	reply, err := s.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	cmd, err := ParseRecipe(reply)
	if err != nil {
		s.logger.Warn("Model reply failed to parse", zap.Error(err))
		return nil, err
	}

	rec, err := s.recipeService.AddRecipe(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated recipe persisted",
		zap.String("name", rec.Name),
		zap.Int("lines", len(rec.Ingredients)),
	)
	return rec, nil
}

func (s *GenerationService) buildPromptContext(ctx context.Context) (PromptContext, error) {
	var pctx PromptContext

	ingredients, err := s.catalogService.ListIngredients(ctx)
	if err != nil {
		return pctx, err
	}
	for _, ingredient := range ingredients {
		pctx.IngredientNames = append(pctx.IngredientNames, ingredient.Name)
	}

	units, err := s.catalogService.ListUnits(ctx)
	if err != nil {
		return pctx, err
	}
	for _, unit := range units {
		pctx.UnitNames = append(pctx.UnitNames, unit.Name)
	}

	pctx.RecipeNames, err = s.recipeService.ListRecipeNames(ctx)
	if err != nil {
		return pctx, err
	}

	return pctx, nil
}
