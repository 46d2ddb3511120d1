package graph

// ScatterStylesheet returns the scatter view's stylesheet for the given
// selection: the base rules, plus emphasis for the selected node's topic
// group and for the node itself. It is rebuilt from the base every call.
func ScatterStylesheet(selected []ScatterNode) Stylesheet {
	sheet := BaseScatterStylesheet()
	if len(selected) == 0 {
		return sheet
	}
	node := selected[0]

	sheet = append(sheet,
		Rule{
			Selector: topicSelector(node.TopicIdx),
			Style: Style{
				"border-opacity": 0,
				"opacity":        1,
				"label":          "data(filter)",
				"color":          "black",
				"text-opacity":   0.8,
				"font-size":      5,
				"z-index":        9999,
				"text-wrap":      "wrap",
			},
		},
		// Must follow the topic rule so the node's own label wins.
		Rule{
			Selector: nodeIDSelector(node.ID),
			Style: Style{
				"border-color":   "black",
				"border-width":   0.1,
				"border-opacity": 1,
				"opacity":        1,
				"label":          "Subject: " + node.Filter,
				"color":          "black",
				"text-opacity":   0.8,
				"font-size":      5,
				"z-index":        9999,
				"text-wrap":      "wrap",
			},
		},
	)
	return sheet
}

// NetworkStylesheet returns the network view's stylesheet for the given
// selection. Besides the topic group and node rules it recolours every
// edge incident to the selected node.
func NetworkStylesheet(selected []NetworkNode) Stylesheet {
	sheet := BaseNetworkStylesheet()
	if len(selected) == 0 {
		return sheet
	}
	node := selected[0]

	edgeStyle := func() Style {
		return Style{
			"line-color": "red",
			"opacity":    1,
			"font-size":  1,
			"z-index":    5000,
		}
	}

	sheet = append(sheet,
		Rule{
			Selector: topicSelector(node.TopicIdx),
			Style: Style{
				"opacity":      1,
				"label":        "data(name)",
				"text-opacity": 0.8,
			},
		},
		Rule{
			Selector: nodeIDSelector(node.ID),
			Style: Style{
				"border-color":   "black",
				"border-width":   0.1,
				"border-opacity": 1,
				"opacity":        1,
				"color":          "black",
				"text-opacity":   0.8,
				"font-size":      1,
				"z-index":        9999,
				"text-wrap":      "wrap",
			},
		},
		Rule{Selector: edgeSourceSelector(node.ID), Style: edgeStyle()},
		Rule{Selector: edgeTargetSelector(node.ID), Style: edgeStyle()},
	)
	return sheet
}
