package sqlproxy

import "github.com/AiondaDotCom/WebUI-sub002/store/sqlproxy/internal/adapters"

// NewProxyWithAdapter exposes newProxy so tests can inject a fake database adapter.
func NewProxyWithAdapter(db adapters.DBAdapter, options ...Option) (Proxy, error) {
	return newProxy(db, options...)
}
