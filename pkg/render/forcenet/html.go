package forcenet

import "html/template"

// documentData is the template payload. The JSON fields are pre-marshalled
// and injected as raw script content, so they are typed template.JS to keep
// the contextual escaper from re-quoting them.
type documentData struct {
	Title   string
	Nodes   template.JS
	Edges   template.JS
	Physics template.JS
}

var documentTmpl = template.Must(template.New("forcenet").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
        }
        #network {
            width: 100vw;
            height: 100vh;
            background-color: #ffffff;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="network"></div>
    <script type="text/javascript">
var nodes = new vis.DataSet({{.Nodes}});
var edges = new vis.DataSet({{.Edges}});

var container = document.getElementById("network");
var physics = {{.Physics}};

var options = {
  nodes: {
    font: { size: 12 },
    scaling: {
      min: 20,
      max: 30,
      label: { enabled: true, min: 14, max: 30 }
    },
    shapeProperties: { useBorderWithImage: true },
    brokenImage: undefined
  },
  edges: {
    font: { size: 8, align: "middle" },
    smooth: { type: "continuous", forceDirection: "none" }
  },
  physics: {
    forceAtlas2Based: {
      gravitationalConstant: physics.gravitationalConstant,
      centralGravity: physics.centralGravity,
      springLength: physics.springLength,
      springConstant: physics.springConstant
    },
    maxVelocity: physics.maxVelocity,
    minVelocity: physics.minVelocity,
    solver: physics.solver
  },
  interaction: {
    hover: true,
    tooltipDelay: 200
  }
};

// Icon URLs may be unreachable; fall back to plain colored dots so a missing
// resource never breaks the scene.
nodes.forEach(function (n) {
  if (n.shape === "image" && n.image) {
    var probe = new Image();
    probe.onerror = function () {
      nodes.update({ id: n.id, shape: "dot", image: undefined });
    };
    probe.src = n.image;
  }
});

var network = new vis.Network(container, { nodes: nodes, edges: edges }, options);
    </script>
  </body>
</html>`))
