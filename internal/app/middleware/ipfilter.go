package middlware

import (
	"net"
	"net/http"

	"github.com/ujwegh/gamemart/internal/app/handlers"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
)

// IPFilter admits only callers whose address falls into one of the allowed
// networks. An empty list admits everyone.
type IPFilter struct {
	networks []*net.IPNet
}

func NewIPFilter(allowedCIDRs []string) IPFilter {
	f := IPFilter{}
	for _, cidr := range allowedCIDRs {
		_, netblock, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Log.Warn("skipping invalid CIDR", zap.String("cidr", cidr), zap.Error(err))
			continue
		}
		f.networks = append(f.networks, netblock)
	}
	return f
}

func (f IPFilter) Allowed(ip string) bool {
	if len(f.networks) == 0 {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, netblock := range f.networks {
		if netblock.Contains(parsed) {
			return true
		}
	}
	return false
}

func (f IPFilter) Filter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !f.Allowed(host) {
			logger.Log.Warn("webhook from disallowed address", zap.String("remote_addr", r.RemoteAddr))
			handlers.WriteJSONErrorResponse(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
