package main

import (
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL string) *resty.Client {
	return resty.New().SetBaseURL(apiURL).SetHeader("Content-Type", "application/json")
}

func runGet(apiURL, path string, out io.Writer) error {
	resp, err := newClient(apiURL).R().Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = fmt.Fprintln(out, resp.String())
	return err
}

func runPost(apiURL, path string, payload interface{}, out io.Writer) error {
	resp, err := newClient(apiURL).R().SetBody(payload).Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = fmt.Fprintln(out, resp.String())
	return err
}

func runDelete(apiURL, path string, out io.Writer) error {
	resp, err := newClient(apiURL).R().Delete(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	if s := resp.String(); s != "" {
		_, _ = fmt.Fprintln(out, s)
	}
	return nil
}
