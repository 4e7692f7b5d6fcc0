package genescan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avast/retry-go/v4"
	"github.com/kiltia/genescan/config"

	"go.uber.org/zap"
	"resty.dev/v3"
)

var (
	ErrClientError = errors.New("client error from the Entrez API")
	ErrServerError = errors.New("server error from the Entrez API")
)

// EntrezClient talks to the NCBI E-utilities efetch endpoint. Every request
// carries the contact email and tool name required by the NCBI usage policy.
type EntrezClient struct {
	http  *resty.Client
	cfg   config.EntrezConfig
	email string
}

func NewEntrezClient(cfg config.EntrezConfig, email string) *EntrezClient {
	httpClient := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetLogger(zap.S())

	return &EntrezClient{
		http:  httpClient,
		cfg:   cfg,
		email: email,
	}
}

// efetch issues one GET against efetch.fcgi. Transport failures and server
// errors are retried up to cfg.Attempts times (1 means a single try);
// client errors are permanent and returned immediately.
func (c *EntrezClient) efetch(
	ctx context.Context,
	params map[string]string,
) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			resp, err := c.http.R().
				WithContext(ctx).
				SetQueryParams(params).
				SetQueryParam("email", c.email).
				SetQueryParam("tool", c.cfg.Tool).
				Get(c.cfg.BaseURL + "/efetch.fcgi")
			if err != nil {
				return err
			}
			status := resp.StatusCode()
			if status > 399 && status < 500 {
				return retry.Unrecoverable(
					fmt.Errorf("%w: status %d", ErrClientError, status),
				)
			}
			if status > 499 {
				return fmt.Errorf("%w: status %d", ErrServerError, status)
			}
			body = resp.Bytes()
			return nil
		},
		retry.Attempts(c.cfg.Attempts),
		retry.Delay(c.cfg.MinWaitTime),
		retry.MaxDelay(c.cfg.MaxWaitTime),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			zap.S().Debugw(
				"retrying efetch request",
				"attempt", n+1,
				"error", err,
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// FetchGeneRecord retrieves the XML gene record for a numeric gene
// identifier and extracts the protein accession and genomic interval.
func (c *EntrezClient) FetchGeneRecord(
	ctx context.Context,
	geneID int,
) (GeneLocus, error) {
	body, err := c.efetch(ctx, map[string]string{
		"db":      "gene",
		"id":      strconv.Itoa(geneID),
		"retmode": "xml",
	})
	if err != nil {
		return GeneLocus{}, fmt.Errorf("fetching gene record: %w", err)
	}
	return extractGeneLocus(body)
}

// FetchProteinLength retrieves the FASTA record for a protein accession and
// returns its residue count.
func (c *EntrezClient) FetchProteinLength(
	ctx context.Context,
	accession string,
) (int, error) {
	body, err := c.efetch(ctx, map[string]string{
		"db":      "protein",
		"id":      accession,
		"rettype": "fasta",
		"retmode": "text",
	})
	if err != nil {
		return 0, fmt.Errorf("fetching protein sequence: %w", err)
	}
	rec, err := parseSingleFASTA(bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("parsing protein sequence for %s: %w", accession, err)
	}
	return rec.Residues(), nil
}
