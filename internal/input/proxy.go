package input

import (
	"net/http"
	"net/url"
	"strings"
)

// newProxyFunc builds the transport's proxy callback. With no explicit
// proxy configured it defers to the standard environment variables.
// Hosts matching an entry in noProxy (comma-separated, dot-prefixed
// entries match subdomains) connect directly.
func newProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	var skip []string
	for _, entry := range strings.Split(noProxy, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			skip = append(skip, entry)
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		host := req.URL.Hostname()
		for _, entry := range skip {
			if host == entry || strings.HasSuffix(host, "."+strings.TrimPrefix(entry, ".")) {
				return nil, nil
			}
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
