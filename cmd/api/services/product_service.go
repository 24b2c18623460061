package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"revana/aggregate"
	"revana/cache"
	"revana/cmd/api/clients/amazonclient"
	"revana/cmd/api/dto"
	"revana/internal/logger"
	"revana/eventbus"
	"revana/models"
	"revana/repositories"
)

// ProductPlatform is the slice of the Amazon client the review flows need.
type ProductPlatform interface {
	ListReviews(ctx context.Context, asin string) ([]amazonclient.RawReview, error)
	GetProduct(ctx context.Context, asin string) (amazonclient.ProductSummary, error)
}

// ProductStore is the persistence surface of the review flows.
type ProductStore interface {
	ResolveOrCreate(ctx context.Context, asin string, defaults repositories.SubjectDefaults) (*models.Product, error)
	AppendReview(ctx context.Context, asin, userEmail, text string, rating int) (*models.StoredReview, error)
	ListReviews(ctx context.Context, asin string) ([]models.StoredReview, error)
}

// ProductService drives the product review analysis pipeline. It shares
// the aggregation core with the video flow but applies no text filter and
// opts into the low-star fallback for the unfavorable summary group.
type ProductService struct {
	platform   ProductPlatform
	store      ProductStore
	users      UserDirectory
	classifier aggregate.Classifier
	summarizer aggregate.Summarizer
	analyses   *cache.Cache[dto.AnalysisResponseDTO]
	bus        eventbus.EventBus
}

func NewProductService(
	platform ProductPlatform,
	store ProductStore,
	users UserDirectory,
	classifier aggregate.Classifier,
	summarizer aggregate.Summarizer,
	analyses *cache.Cache[dto.AnalysisResponseDTO],
	bus eventbus.EventBus,
) *ProductService {
	return &ProductService{
		platform:   platform,
		store:      store,
		users:      users,
		classifier: classifier,
		summarizer: summarizer,
		analyses:   analyses,
		bus:        bus,
	}
}

var asinRe = regexp.MustCompile(`^[A-Z0-9]{10}$`)

func normalizeASIN(input string) (string, error) {
	asin := strings.ToUpper(strings.TrimSpace(input))
	if !asinRe.MatchString(asin) {
		return "", fmt.Errorf("%w: not an asin: %q", ErrInvalidInput, input)
	}
	return asin, nil
}

// GetReviews runs the full analysis pipeline for one product. An ASIN the
// platform does not know maps to ErrSubjectNotFound even when local
// reviews exist for it.
func (s *ProductService) GetReviews(ctx context.Context, rawASIN string) (dto.AnalysisResponseDTO, error) {
	asin, err := normalizeASIN(rawASIN)
	if err != nil {
		return dto.AnalysisResponseDTO{}, err
	}

	key := cache.AmazonReviewsPrefix + asin
	if hit, ok := s.analyses.Get(key); ok {
		return hit, nil
	}

	var (
		platformReviews []amazonclient.RawReview
		storedReviews   []models.StoredReview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The detail lookup doubles as an existence check.
		if _, err := s.platform.GetProduct(gctx, asin); err != nil {
			if amazonclient.IsNotFound(err) {
				return ErrSubjectNotFound
			}
			return err
		}
		reviews, err := s.platform.ListReviews(gctx, asin)
		if err != nil {
			if amazonclient.IsNotFound(err) {
				return ErrSubjectNotFound
			}
			return err
		}
		platformReviews = reviews
		return nil
	})
	g.Go(func() error {
		reviews, err := s.store.ListReviews(gctx, asin)
		if err != nil {
			logger.WarnWithFields("stored review read failed, continuing without", logger.Fields{
				"asin":  asin,
				"error": err.Error(),
			})
			return nil
		}
		storedReviews = reviews
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.AnalysisResponseDTO{}, err
	}

	// Reviews skip the low-signal text filter (filter.Disabled): prose
	// reviews don't exhibit the emoji-only or timestamp-link patterns.
	raw := make([]aggregate.Comment, 0, len(platformReviews))
	for _, r := range platformReviews {
		raw = append(raw, aggregate.Comment{
			Author:      r.Author,
			AuthorImage: r.ProfileImage,
			Text:        r.Text,
			Rating:      r.Rating,
		})
	}

	stored := make([]aggregate.Comment, 0, len(storedReviews))
	for _, r := range storedReviews {
		author, authorImage := r.UserEmail, ""
		if u, err := s.users.FindByEmail(ctx, r.UserEmail); err == nil {
			author, authorImage = u.Username, u.Picture
		}
		stored = append(stored, aggregate.Comment{
			Author:      author,
			AuthorImage: authorImage,
			Text:        r.Text,
			Sentiment:   r.EffectiveSentiment(),
			Rating:      r.Rating,
			CreatedAt:   r.CreatedAt,
		})
	}

	res, err := aggregate.Aggregate(ctx, stored, raw, s.classifier, s.summarizer, aggregate.LowRatedStored)
	if err != nil {
		return dto.AnalysisResponseDTO{}, err
	}

	out := dto.NewAnalysisResponseDTO(res)
	s.analyses.Set(key, out)

	publishEvent(s.bus, eventbus.TopicAnalysisCompleted, "analysis.completed", eventbus.AnalysisCompletedPayload{
		SubjectKind: "product",
		SubjectID:   asin,
		Comments:    res.Tally.Sum(),
		Positive:    res.Tally.Positive,
		Neutral:     res.Tally.Neutral,
		Negative:    res.Tally.Negative,
	})

	return out, nil
}

// AddReview persists a review for the authenticated user.
func (s *ProductService) AddReview(ctx context.Context, rawASIN, userEmail, text string, rating int) (*models.StoredReview, error) {
	asin, err := normalizeASIN(rawASIN)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty review", ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating %d out of range 1..5", ErrInvalidInput, rating)
	}

	defaults := repositories.SubjectDefaults{}
	if summary, err := s.platform.GetProduct(ctx, asin); err == nil {
		defaults = repositories.SubjectDefaults{
			Title:        summary.Name,
			ThumbnailURL: summary.ImageURL,
		}
	} else if amazonclient.IsNotFound(err) {
		return nil, ErrSubjectNotFound
	}

	if _, err := s.store.ResolveOrCreate(ctx, asin, defaults); err != nil {
		return nil, err
	}
	stored, err := s.store.AppendReview(ctx, asin, userEmail, text, rating)
	if err != nil {
		return nil, err
	}

	publishEvent(s.bus, eventbus.TopicCommentCreated, "comment.created", eventbus.CommentCreatedPayload{
		SubjectKind: "product",
		SubjectID:   asin,
		UserEmail:   userEmail,
		Rating:      rating,
	})

	return stored, nil
}
