package client

import (
	"net/url"
	"strconv"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// query builds a query string that leaves out zero-valued filters.
type query url.Values

func (q query) num(key string, v int) query {
	if v != 0 {
		url.Values(q).Set(key, strconv.Itoa(v))
	}
	return q
}

func (q query) text(key, v string) query {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q query) flag(key string, v bool) query {
	if v {
		url.Values(q).Set(key, "true")
	}
	return q
}

// coord always sets the value; 0 is a valid latitude or longitude.
func (q query) coord(key string, v float64) query {
	url.Values(q).Set(key, strconv.FormatFloat(v, 'f', -1, 64))
	return q
}

func (q query) values() url.Values { return url.Values(q) }

func pageQuery(p domain.Page) url.Values {
	return query{}.num("skip", p.Skip).num("limit", p.Limit).values()
}

func itoa(id int) string { return strconv.Itoa(id) }
