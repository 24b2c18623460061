package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"revana/aggregate"
	"revana/cache"
	"revana/cmd/api/clients/youtubeclient"
	"revana/cmd/api/dto"
	"revana/internal/logger"
	"revana/eventbus"
	"revana/filter"
	"revana/models"
	"revana/repositories"
)

// VideoPlatform is the slice of the YouTube client the video flows need.
type VideoPlatform interface {
	ListComments(ctx context.Context, videoID string) ([]youtubeclient.RawComment, error)
	GetVideo(ctx context.Context, videoID string) (youtubeclient.VideoSummary, error)
	Search(ctx context.Context, query string) ([]youtubeclient.VideoSummary, error)
}

// VideoStore is the persistence surface of the video flows.
type VideoStore interface {
	ResolveOrCreate(ctx context.Context, videoID string, defaults repositories.SubjectDefaults) (*models.Video, error)
	AppendComment(ctx context.Context, videoID, userEmail, text string) (*models.StoredComment, error)
	ListComments(ctx context.Context, videoID, emailFilter string) ([]models.StoredComment, error)
}

// UserDirectory resolves stored comment authors to display profiles.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// VideoService drives the video comment analysis pipeline: platform fetch
// and stored read in parallel, low-signal filtering, batch classification,
// tally and summary, memoized per subject for the cache TTL.
type VideoService struct {
	platform   VideoPlatform
	store      VideoStore
	users      UserDirectory
	classifier aggregate.Classifier
	summarizer aggregate.Summarizer
	analyses   *cache.Cache[dto.AnalysisResponseDTO]
	searches   *cache.Cache[[]dto.SearchResultDTO]
	bus        eventbus.EventBus
}

func NewVideoService(
	platform VideoPlatform,
	store VideoStore,
	users UserDirectory,
	classifier aggregate.Classifier,
	summarizer aggregate.Summarizer,
	analyses *cache.Cache[dto.AnalysisResponseDTO],
	searches *cache.Cache[[]dto.SearchResultDTO],
	bus eventbus.EventBus,
) *VideoService {
	return &VideoService{
		platform:   platform,
		store:      store,
		users:      users,
		classifier: classifier,
		summarizer: summarizer,
		analyses:   analyses,
		searches:   searches,
		bus:        bus,
	}
}

// GetComments runs the full analysis pipeline for one video. userEmail,
// when non-empty, restricts the stored comments to that author; filtered
// views get their own cache entries so they never leak into the shared one.
func (s *VideoService) GetComments(ctx context.Context, rawID, userEmail string) (dto.AnalysisResponseDTO, error) {
	videoID, err := youtubeclient.NormalizeVideoID(rawID)
	if err != nil {
		return dto.AnalysisResponseDTO{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := cache.VideoCommentsPrefix + videoID
	if userEmail != "" {
		key += ":" + userEmail
	}
	if hit, ok := s.analyses.Get(key); ok {
		return hit, nil
	}

	var (
		platformComments []youtubeclient.RawComment
		storedComments   []models.StoredComment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comments, err := s.platform.ListComments(gctx, videoID)
		if err != nil {
			if youtubeclient.IsNotFound(err) {
				return ErrSubjectNotFound
			}
			return err
		}
		platformComments = comments
		return nil
	})
	g.Go(func() error {
		comments, err := s.store.ListComments(gctx, videoID, userEmail)
		if err != nil {
			// A broken store read degrades to platform-only analysis.
			logger.WarnWithFields("stored comment read failed, continuing without", logger.Fields{
				"video_id": videoID,
				"error":    err.Error(),
			})
			return nil
		}
		storedComments = comments
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.AnalysisResponseDTO{}, err
	}

	raw := make([]aggregate.Comment, 0, len(platformComments))
	for _, c := range platformComments {
		if !filter.VideoComments.Keep(c.Text) {
			continue
		}
		raw = append(raw, aggregate.Comment{
			Author:      c.Author,
			AuthorImage: c.ProfileImage,
			Text:        c.Text,
			LikeCount:   c.LikeCount,
			ReplyCount:  c.ReplyCount,
		})
	}

	stored := s.storedToComments(ctx, storedComments)

	res, err := aggregate.Aggregate(ctx, stored, raw, s.classifier, s.summarizer, aggregate.NoFallback)
	if err != nil {
		return dto.AnalysisResponseDTO{}, err
	}

	out := dto.NewAnalysisResponseDTO(res)
	s.analyses.Set(key, out)

	publishEvent(s.bus, eventbus.TopicAnalysisCompleted, "analysis.completed", eventbus.AnalysisCompletedPayload{
		SubjectKind: "video",
		SubjectID:   videoID,
		Comments:    res.Tally.Sum(),
		Positive:    res.Tally.Positive,
		Neutral:     res.Tally.Neutral,
		Negative:    res.Tally.Negative,
	})

	return out, nil
}

// storedToComments maps persisted comments into aggregation units,
// resolving authors through the user directory. Unresolvable authors keep
// their email as display name.
func (s *VideoService) storedToComments(ctx context.Context, storedComments []models.StoredComment) []aggregate.Comment {
	profiles := map[string]*models.User{}
	out := make([]aggregate.Comment, 0, len(storedComments))
	for _, c := range storedComments {
		author := c.UserEmail
		authorImage := ""
		if u, ok := profiles[c.UserEmail]; ok {
			if u != nil {
				author, authorImage = u.Username, u.Picture
			}
		} else {
			u, err := s.users.FindByEmail(ctx, c.UserEmail)
			if err != nil {
				u = nil
			}
			profiles[c.UserEmail] = u
			if u != nil {
				author, authorImage = u.Username, u.Picture
			}
		}
		out = append(out, aggregate.Comment{
			Author:      author,
			AuthorImage: authorImage,
			Text:        c.Text,
			Sentiment:   c.EffectiveSentiment(),
			CreatedAt:   c.CreatedAt,
		})
	}
	return out
}

// AddComment persists a comment for the authenticated user, resolving the
// subject record first. The memoized analysis is intentionally left
// untouched; the comment becomes visible when the cache entry expires.
func (s *VideoService) AddComment(ctx context.Context, rawID, userEmail, text string) (*models.StoredComment, error) {
	videoID, err := youtubeclient.NormalizeVideoID(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty comment", ErrInvalidInput)
	}

	// Snippet metadata is best-effort; the record falls back to
	// placeholder attributes when the platform lookup fails.
	defaults := repositories.SubjectDefaults{}
	if summary, err := s.platform.GetVideo(ctx, videoID); err == nil {
		defaults = repositories.SubjectDefaults{
			Title:        summary.Title,
			Channel:      summary.Channel,
			ThumbnailURL: summary.ThumbnailURL,
		}
	} else if youtubeclient.IsNotFound(err) {
		return nil, ErrSubjectNotFound
	}

	if _, err := s.store.ResolveOrCreate(ctx, videoID, defaults); err != nil {
		return nil, err
	}
	stored, err := s.store.AppendComment(ctx, videoID, userEmail, text)
	if err != nil {
		return nil, err
	}

	publishEvent(s.bus, eventbus.TopicCommentCreated, "comment.created", eventbus.CommentCreatedPayload{
		SubjectKind: "video",
		SubjectID:   videoID,
		UserEmail:   userEmail,
	})

	return stored, nil
}

// Search runs a platform video search, memoized per query string.
func (s *VideoService) Search(ctx context.Context, query string) ([]dto.SearchResultDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}

	key := cache.SearchPrefix + query
	if hit, ok := s.searches.Get(key); ok {
		return hit, nil
	}

	results, err := s.platform.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SearchResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SearchResultDTO{
			VideoID:      r.VideoID,
			Title:        r.Title,
			Channel:      r.Channel,
			ThumbnailURL: r.ThumbnailURL,
		})
	}
	s.searches.Set(key, out)
	return out, nil
}

// GetDetail returns snippet metadata for one video.
func (s *VideoService) GetDetail(ctx context.Context, rawID string) (dto.VideoDetailDTO, error) {
	videoID, err := youtubeclient.NormalizeVideoID(rawID)
	if err != nil {
		return dto.VideoDetailDTO{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	summary, err := s.platform.GetVideo(ctx, videoID)
	if err != nil {
		if youtubeclient.IsNotFound(err) {
			return dto.VideoDetailDTO{}, ErrSubjectNotFound
		}
		return dto.VideoDetailDTO{}, err
	}
	return dto.VideoDetailDTO{
		VideoID:      summary.VideoID,
		Title:        summary.Title,
		Channel:      summary.Channel,
		ThumbnailURL: summary.ThumbnailURL,
	}, nil
}
