package api

import (
	"errors"
	"net/url"

	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// WatchRequest is the body of POST /api/watch.
type WatchRequest struct {
	Anime   source.AnimeSummary `json:"anime"`
	Episode source.Episode      `json:"episode"`
}

// VideoResponse reports a resolution. Video is null when nothing playable was
// found; Fallback then links the episode page.
type VideoResponse struct {
	Video    *source.Video `json:"video"`
	Fallback string        `json:"fallback,omitempty"`
	Message  string        `json:"message,omitempty"`
}

func routes(app *fiber.App, service *session.Service) {
	app.Get(catalogURL, func(c *fiber.Ctx) error {
		return c.JSON(nonNil(service.Catalog(c.UserContext())))
	})

	app.Get(searchURL, func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return fiber.NewError(fiber.StatusBadRequest, session.MessageEmptyQuery)
		}
		return c.JSON(nonNil(service.Search(c.UserContext(), q)))
	})

	app.Get(episodesURL, func(c *fiber.Ctx) error {
		target, err := requiredURL(c)
		if err != nil {
			return err
		}
		return c.JSON(nonNil(service.Episodes(c.UserContext(), target)))
	})

	app.Get(videoURL, func(c *fiber.Ctx) error {
		target, err := requiredURL(c)
		if err != nil {
			return err
		}
		return videoResponse(c, service.Video(c.UserContext(), target).ToPointer(), target)
	})

	app.Post(watchURL, func(c *fiber.Ctx) error {
		var req WatchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Anime.Title == "" || req.Episode.URL == "" {
			return fiber.NewError(fiber.StatusBadRequest, "anime.title and episode.url are required")
		}
		return videoResponse(c, service.Watch(c.UserContext(), req.Anime, req.Episode).ToPointer(), req.Episode.URL)
	})

	app.Get(historyURL, func(c *fiber.Ctx) error {
		return c.JSON(nonNil(service.History().Recent(c.QueryInt("limit", 0))))
	})

	app.Delete(historyTitleURL, func(c *fiber.Ctx) error {
		title, err := url.PathUnescape(c.Params("title"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.History().Remove(title); err != nil {
			if errors.Is(err, history.ErrUnknownTitle) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func requiredURL(c *fiber.Ctx) (string, error) {
	target := c.Query("url")
	if target == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "url query parameter is required")
	}
	return target, nil
}

func videoResponse(c *fiber.Ctx, video *source.Video, page string) error {
	if video == nil {
		return c.Status(fiber.StatusNotFound).JSON(VideoResponse{
			Fallback: page,
			Message:  session.MessageVideoUnavailable,
		})
	}
	return c.JSON(VideoResponse{Video: video})
}

// nonNil keeps empty results encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	return lo.Ternary(items == nil, []T{}, items)
}
