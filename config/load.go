package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads <name>.yaml from the working directory or the first of dirs
// that has it, then overlays environment variables. POSTGRES_MASTER_USERNAME
// overrides postgres.master.userName.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	keys := indexKeys(k.Raw())
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return keys.resolve(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment overrides")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoderConfig(out)}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return out, nil
}

func locate(fileName string, dirs []string) (string, error) {
	candidates := append([]string{"."}, dirs...)
	for _, dir := range candidates {
		path, err := filepath.Abs(filepath.Join(dir, fileName))
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve config path")
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", fileName, strings.Join(candidates, ", "))
}

// Env values arrive as strings, so durations and comma separated lists are
// converted on decode. Field names match case-insensitively.
func decoderConfig(out any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

// keyIndex maps a flattened, separator-free spelling of every YAML path to
// the path as written, e.g. "postgres.sslmode" -> "postgres.sslMode".
type keyIndex map[string]string

func indexKeys(raw map[string]any) keyIndex {
	idx := keyIndex{}
	idx.add("", "", raw)

	return idx
}

func (idx keyIndex) add(flatPrefix, pathPrefix string, node map[string]any) {
	for key, value := range node {
		flat, path := flattenToken(key), key
		if flatPrefix != "" {
			flat, path = flatPrefix+"."+flat, pathPrefix+"."+key
		}
		idx[flat] = path

		if child, ok := value.(map[string]any); ok {
			idx.add(flat, path, child)
		}
	}
}

// resolve turns an env var name into a koanf path. The longest prefix known
// from the YAML keeps its spelling; the rest is lower-cased.
func (idx keyIndex) resolve(envKey string) string {
	var segments []string
	for _, s := range strings.Split(strings.ToLower(envKey), "_") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	for n := len(segments); n > 0; n-- {
		path, ok := idx[strings.Join(segments[:n], ".")]
		if !ok {
			continue
		}

		return strings.Join(append([]string{path}, segments[n:]...), ".")
	}

	return strings.Join(segments, ".")
}

func flattenToken(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first replica without a host or port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		get := func(field string) string {
			value, _ := lookup(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", n, field))

			return strings.TrimSpace(value)
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
