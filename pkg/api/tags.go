package api

import (
	"context"
	"strconv"

	"github.com/storygraph/storygraph/pkg/entity"
)

// TopTags fetches the most used tags from the analytics endpoint. limit caps
// the number of returned tags and minCount filters out tags used fewer times;
// zero values omit the corresponding filter.
func (g *Gateway) TopTags(ctx context.Context, limit, minCount int) ([]entity.TagCount, error) {
	req := NewRequest().Route("analytics", "populartags")
	if limit > 0 {
		req = req.SetParam("limit", strconv.Itoa(limit))
	}
	if minCount > 0 {
		req = req.SetParam("min_count", strconv.Itoa(minCount))
	}
	return SendList[entity.TagCount](ctx, g, req)
}
