// Package assetstest writes a small, consistent asset directory for tests.
package assetstest

import (
	"os"
	"path/filepath"
	"testing"
)

// Files of the default fixture, keyed by file name.
var Files = map[string]string{
	"topics.json": `{
  "0": {
    "weight_token": ["0.500*\"data\"", "0.300*\"python\"", "0.200*\"sql\""],
    "filter_index": ["Data Scientist", "Analyst"],
    "filter_value": [3, 1]
  },
  "1": {
    "weight_token": ["0.600*\"design\"", "0.400*\"ux\""],
    "filter_index": ["Designer"],
    "filter_value": [0]
  }
}`,
	"topic_color.txt": "#1f77b4\n#ff7f0e\n",
	"filter_token_hist.json": `{
  "Data Scientist": {"python": 5, "data": 7},
  "Designer": {"figma": 2},
  "Sales/Ops": {"crm": 4, "quota": 1}
}`,
	"topic_elm_list.json": `{"elm_list": [
  {"data": {"id": "d1", "filter": "Data Scientist", "topic_idx": 0, "color": "#1f77b4",
            "text": "Builds models\nShips dashboards", "token_bow": "[data, python]", "node_size": 4},
   "position": {"x": 1, "y": 2}},
  {"data": {"id": "Sales/Ops", "filter": "Sales/Ops", "topic_idx": -1, "color": "grey",
            "text": "", "token_bow": ["crm", "quota"], "node_size": 2},
   "position": {"x": 3, "y": 4}},
  {"data": {"id": "d3", "filter": "Designer", "topic_idx": -2, "color": "white",
            "text": "", "token_bow": "", "node_size": 2}},
  {"data": {"id": "d4", "filter": "Designer", "topic_idx": 1, "color": "",
            "text": "Draws *screens*", "token_bow": "[design]", "node_size": 3}}
]}`,
	"token_network_elm_list.json": `{"elm_list": [
  {"data": {"id": "data", "topic_idx": 0, "color": "#1f77b4", "name": "data", "node_size": 5},
   "position": {"x": 0, "y": 0}},
  {"data": {"id": "design", "topic_idx": 1, "color": "", "name": "design", "node_size": 4},
   "position": {"x": 10, "y": 0}},
  {"data": {"id": "Designer", "topic_idx": -1, "color": "grey", "name": "Designer", "node_size": 1}},
  {"data": {"source": "data", "target": "design", "edge_weight": 0.5}},
  {"group": "edges", "data": {"id": "e2", "source": "design", "target": "Designer", "edge_weight": 0.1}}
]}`,
}

// Write creates the fixture in a fresh temporary directory and returns it.
// overrides replace or add files by name; an empty value removes the file.
func Write(t testing.TB, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range Files {
		if o, ok := overrides[name]; ok {
			content = o
		}
		if content == "" {
			continue
		}
		writeFile(t, filepath.Join(dir, name), content)
	}
	for name, content := range overrides {
		if _, ok := Files[name]; ok || content == "" {
			continue
		}
		writeFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
