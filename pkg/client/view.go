package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) Board(ctx context.Context, filter view.BoardFilter) (*view.BoardProjection, error) {
	query := url.Values{}
	setFilter(query, "procurador", filter.Procurador)
	setFilter(query, "assessor", filter.Assessor)

	var res view.BoardProjection
	if err := c.jsonRequest(ctx, http.MethodGet, "/board", query, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Assessors(ctx context.Context) ([]string, error) {
	var res api.AssessorsResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/assessors", nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Assessors, nil
}

func (c *Client) Distribution(ctx context.Context, filter view.DistributionFilter) (*view.DistributionProjection, error) {
	query := url.Values{}
	setFilter(query, "procurador", filter.Procurador)
	setFilter(query, "month", filter.Month)

	var res view.DistributionProjection
	if err := c.jsonRequest(ctx, http.MethodGet, "/distribution/"+url.PathEscape(filter.Type), query, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Dashboard(ctx context.Context) (*view.DashboardProjection, error) {
	var res view.DashboardProjection
	if err := c.jsonRequest(ctx, http.MethodGet, "/dashboard", nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Details(ctx context.Context, procurador string, metric view.Metric) (*view.DetailsProjection, error) {
	var res view.DetailsProjection

	path := "/dashboard/" + url.PathEscape(procurador) + "/" + url.PathEscape(string(metric))
	if err := c.jsonRequest(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Reports(ctx context.Context, filter view.ReportFilter) (*view.ReportProjection, error) {
	var res view.ReportProjection
	if err := c.jsonRequest(ctx, http.MethodGet, "/reports", reportQuery(filter), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// ExportReport writes the PDF rendition of the report to w.
func (c *Client) ExportReport(ctx context.Context, filter view.ReportFilter, w io.Writer) error {
	if err := c.request(ctx, http.MethodGet, "/reports/export", reportQuery(filter), nil, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func reportQuery(filter view.ReportFilter) url.Values {
	query := url.Values{}
	setFilter(query, "procurador", filter.Procurador)
	setFilter(query, "status", string(filter.Status))
	setFilter(query, "month", filter.Month)
	return query
}

func setFilter(query url.Values, name string, value string) {
	if value == "" {
		return
	}

	query.Set(name, value)
}
