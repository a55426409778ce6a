package shikaku

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Method is a named solving strategy the batch driver and the benchmark
// sweep can run. The name keys persisted results.
type Method struct {
	Name  string
	Solve func(g Grid) (Result, error)
}

// ExactMethod wraps an exact backend as a Method.
func ExactMethod(b Backend, timeout time.Duration) Method {
	return Method{
		Name:  b.Name(),
		Solve: func(g Grid) (Result, error) { return SolveExact(g, b, timeout) },
	}
}

// AnnealMethod wraps the escalating annealer as a Method.
func AnnealMethod(seed int64, cfg Config) Method {
	return Method{
		Name:  "anneal",
		Solve: func(g Grid) (Result, error) { return SolveAnneal(g, seed, cfg) },
	}
}

// BatchRecord is one persisted (method, instance) outcome.
type BatchRecord struct {
	Instance string   `json:"instance"`
	Method   string   `json:"method"`
	Solved   bool     `json:"solved"`
	Status   string   `json:"status"`
	TimeMs   int64    `json:"timeMs"`
	Rects    [][4]int `json:"rects,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// RunBatch solves every instance file in dir with the given method and
// persists each outcome in the JSON store at storePath, keyed by
// (method, filename). Pairs already present in the store are skipped, never
// re-solved, so a rerun over the same directory is a no-op. It returns the
// number of instances actually solved this run.
func RunBatch(dir, storePath string, m Method) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	raw, err := os.ReadFile(storePath)
	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}
	store := map[string]map[string]BatchRecord{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &store); err != nil {
			return 0, fmt.Errorf("result store %s: %w", storePath, err)
		}
	}

	ran := 0
	for _, name := range names {
		if gjson.GetBytes(raw, storeKey(m.Name, name)).Exists() {
			log.WithFields(logrus.Fields{"method": m.Name, "instance": name}).
				Debug("already solved, skipping")
			continue
		}

		rec := BatchRecord{Instance: name, Method: m.Name}
		g, err := LoadGrid(filepath.Join(dir, name))
		if err != nil {
			rec.Error = err.Error()
		} else {
			res, err := m.Solve(g)
			rec.Solved = res.Solved
			rec.Status = res.Status.String()
			rec.TimeMs = res.Elapsed.Milliseconds()
			if err != nil {
				rec.Error = err.Error()
			}
			for _, r := range res.Rects {
				rec.Rects = append(rec.Rects, [4]int{r.RowMin, r.ColMin, r.RowMax, r.ColMax})
			}
		}

		if store[m.Name] == nil {
			store[m.Name] = map[string]BatchRecord{}
		}
		store[m.Name][name] = rec
		if err := saveStore(storePath, store); err != nil {
			return ran, err
		}
		ran++
		log.WithFields(logrus.Fields{
			"method":   m.Name,
			"instance": name,
			"solved":   rec.Solved,
			"timeMs":   rec.TimeMs,
		}).Info("instance done")
	}
	return ran, nil
}

// storeKey builds the gjson lookup path for a (method, instance) pair,
// escaping path metacharacters in the filename.
func storeKey(method, instance string) string {
	esc := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`).Replace(instance)
	return method + "." + esc
}

func saveStore(path string, store map[string]map[string]BatchRecord) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
