package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
)

// listResponse is the generic shape of every Graph API listing edge.
type listResponse struct {
	Data   []json.RawMessage `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// forEachPage follows the cursor chain of a listing edge until the cursor
// runs out or the per-level page cap is reached, handing each page's raw
// items to fn. A non-nil error from fn aborts the walk.
func (c *MetaClient) forEachPage(ctx context.Context, accountID, path string, params url.Values, fn func([]json.RawMessage) error) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("limit", strconv.Itoa(c.cfg.MetaMarketingSync.PageSize))

	after := ""

	for page := 0; page < c.cfg.MetaMarketingSync.MaxPagesPerLevel; page++ {
		if after != "" {
			params.Set("after", after)
		}

		body, err := c.doGet(ctx, accountID, path, params)
		if err != nil {
			return err
		}

		response := &listResponse{}
		if err := json.Unmarshal(body, response); err != nil {
			return fmt.Errorf("meta: decoding %s page: %w", path, err)
		}

		if len(response.Data) > 0 {
			if err := fn(response.Data); err != nil {
				return err
			}
		}

		if len(response.Data) == 0 || !response.Paging.HasNext() {
			return nil
		}

		after = response.Paging.Cursors.After
		if after == "" {
			return nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"path":       path,
		"max_pages":  c.cfg.MetaMarketingSync.MaxPagesPerLevel,
	}).Warn("meta: page cap reached, truncating listing")

	return nil
}

// getAllPages buffers every page of a listing edge. Only used for small
// edges; the sync pipeline streams pages through forEachPage instead.
func (c *MetaClient) getAllPages(ctx context.Context, accountID, path string, params url.Values) ([]json.RawMessage, error) {
	items := make([]json.RawMessage, 0)

	err := c.forEachPage(ctx, accountID, path, params, func(page []json.RawMessage) error {
		items = append(items, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// decodeItems unmarshals raw page items into typed values, skipping
// individually malformed entries.
func decodeItems[T any](items []json.RawMessage, path string) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		var value T
		if err := json.Unmarshal(item, &value); err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  path,
				"error": err.Error(),
			}).Warn("meta: skipping malformed item")
			continue
		}
		out = append(out, value)
	}
	return out, nil
}
