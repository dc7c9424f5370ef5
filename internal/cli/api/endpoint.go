package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"FlashDeck/internal/cli/cache"
)

// Session: то, через что выполняются запросы: транспорт и кеш одной сессии приложения.
type Session interface {
	Transport() *Client
	Store() *cache.Cache
}

// NoArg: аргумент запросов без параметров.
type NoArg struct{}

// Endpoint описывает операцию реестра.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// Query: запрос на чтение. Path может содержать один параметр в фигурных скобках,
// его значение даёт Param.
type Query[A, R any] struct {
	Name         string
	Path         string
	Param        func(A) string
	ProvidesTags func(result R, arg A) []cache.Tag
}

// Endpoint возвращает описание запроса.
func (q Query[A, R]) Endpoint() Endpoint {
	return Endpoint{Name: q.Name, Method: http.MethodGet, Path: q.Path}
}

// Key: ключ результата в кеше.
func (q Query[A, R]) Key(arg A) string {
	if q.Param == nil {
		return q.Name
	}
	return fmt.Sprintf("%s(%s)", q.Name, q.Param(arg))
}

func (q Query[A, R]) fetcher(c *Client, arg A) cache.Fetcher {
	return func(ctx context.Context) (any, []cache.Tag, error) {
		var res R
		err := c.DoJSON(ctx, http.MethodGet, expand(q.Path, q.Param, arg), nil, &res)
		if err != nil {
			// теги ошибки считаются от пустого результата: остаются теги списка
			var zero R
			res = zero
		}
		var tags []cache.Tag
		if q.ProvidesTags != nil {
			tags = q.ProvidesTags(res, arg)
		}
		if err != nil {
			return nil, tags, err
		}
		return res, tags, nil
	}
}

// Fetch возвращает результат из кеша сессии или загружает его.
func (q Query[A, R]) Fetch(ctx context.Context, s Session, arg A) (R, error) {
	v, err := s.Store().Query(ctx, q.Key(arg), q.fetcher(s.Transport(), arg))
	return result[R](v, err)
}

// Subscribe загружает результат и держит подписку: после инвалидации любого из его
// тегов запрос перезагружается, а onChange получает новый результат.
func (q Query[A, R]) Subscribe(ctx context.Context, s Session, arg A, onChange func(R, error)) (R, func(), error) {
	v, unsubscribe, err := s.Store().Subscribe(ctx, q.Key(arg), q.fetcher(s.Transport(), arg), func(v any, err error) {
		onChange(result[R](v, err))
	})
	res, err := result[R](v, err)
	return res, unsubscribe, err
}

// Mutation: изменяющая операция.
type Mutation[A, R any] struct {
	Name            string
	Method          string
	Path            string
	Param           func(A) string
	Body            func(A) any
	InvalidatesTags func(arg A) []cache.Tag
}

// Endpoint возвращает описание мутации.
func (m Mutation[A, R]) Endpoint() Endpoint {
	return Endpoint{Name: m.Name, Method: m.Method, Path: m.Path}
}

// Run выполняет мутацию. Если сервер ответил (успехом или ошибкой), инвалидирует
// объявленные теги; подписанные запросы перезагружаются до возврата из Run.
func (m Mutation[A, R]) Run(ctx context.Context, s Session, arg A) (R, error) {
	var body any
	if m.Body != nil {
		body = m.Body(arg)
	}
	var res R
	err := s.Transport().DoJSON(ctx, m.Method, expand(m.Path, m.Param, arg), body, &res)
	if (err == nil || IsServerError(err)) && m.InvalidatesTags != nil {
		s.Store().Invalidate(ctx, m.InvalidatesTags(arg)...)
	}
	return res, err
}

func result[R any](v any, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	res, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("unexpected cached value %T", v)
	}
	return res, nil
}

// expand подставляет параметр в шаблон пути.
func expand[A any](path string, param func(A) string, arg A) string {
	i := strings.IndexByte(path, '{')
	j := strings.IndexByte(path, '}')
	if param == nil || i < 0 || j < i {
		return path
	}
	return path[:i] + url.PathEscape(param(arg)) + path[j+1:]
}
