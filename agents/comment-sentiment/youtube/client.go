package youtube

import (
	"context"
	"fmt"
	"log"
	"time"

	"sentiment-stack/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// commentPageCap is the largest page size the comment threads endpoint
// accepts.
const commentPageCap = 100

type Client struct {
	service *youtube.Service
}

// NewClient builds a read-only Data API client. The API key is the only
// credential: it is fixed here and never read from the environment again.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	service, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchVideoMetadata returns the snippet and statistics for one video.
// Unknown IDs come back as ErrVideoNotFound; failed calls as a SourceError
// carrying the cause. Statistics the API omits stay zero.
func (c *Client) FetchVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, &SourceError{Op: "videos.list", Err: err}
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	item := response.Items[0]
	metadata := &models.VideoMetadata{
		ID:  videoID,
		URL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID),
	}

	if item.Snippet != nil {
		metadata.Title = item.Snippet.Title
		metadata.Channel = item.Snippet.ChannelTitle
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			metadata.PublishedAt = publishedAt
		}
	}

	if item.Statistics != nil {
		metadata.ViewCount = int64(item.Statistics.ViewCount)
		metadata.LikeCount = int64(item.Statistics.LikeCount)
		metadata.CommentCount = int64(item.Statistics.CommentCount)
	}

	return metadata, nil
}

// FetchComments retrieves up to maxComments top-level comments in the order
// the API serves them. Pagination stops at the budget, at the end of the
// thread, or on the first failed page. A failed page keeps everything
// already fetched and records why retrieval is incomplete; no error escapes
// here, and an empty result is a valid one.
func (c *Client) FetchComments(ctx context.Context, videoID string, maxComments int64) *models.CommentFetchResult {
	result := &models.CommentFetchResult{}

	pageToken := ""
	for int64(len(result.Comments)) < maxComments {
		remaining := maxComments - int64(len(result.Comments))
		pageSize := remaining
		if pageSize > commentPageCap {
			pageSize = commentPageCap
		}

		comments, nextToken, err := c.fetchCommentPage(ctx, videoID, pageToken, pageSize)
		if err != nil {
			result.Incomplete = true
			result.Reason = err.Error()
			log.Printf("Warning: comment retrieval for %s stopped after %d comments: %v",
				videoID, len(result.Comments), err)
			break
		}

		for _, comment := range comments {
			if int64(len(result.Comments)) >= maxComments {
				break
			}
			result.Comments = append(result.Comments, comment)
		}

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	return result
}

// fetchCommentPage is one stateless page request: it takes the cursor from
// the previous response and hands back the next one, empty once the thread
// is exhausted.
func (c *Client) fetchCommentPage(ctx context.Context, videoID, pageToken string, pageSize int64) ([]*models.RawComment, string, error) {
	call := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(pageSize).
		TextFormat("plainText").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, "", &SourceError{Op: "commentThreads.list", Err: err}
	}

	var comments []*models.RawComment
	for _, item := range response.Items {
		snippet := topLevelSnippet(item)
		if snippet == nil {
			continue
		}

		comment := &models.RawComment{
			Author:    snippet.AuthorDisplayName,
			Text:      snippet.TextDisplay,
			LikeCount: snippet.LikeCount,
		}
		if publishedAt, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
			comment.PublishedAt = publishedAt
		}
		comments = append(comments, comment)
	}

	return comments, response.NextPageToken, nil
}

func topLevelSnippet(thread *youtube.CommentThread) *youtube.CommentSnippet {
	if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
		return nil
	}
	return thread.Snippet.TopLevelComment.Snippet
}
