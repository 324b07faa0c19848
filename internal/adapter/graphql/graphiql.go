package graphql

// GraphiQLPage returns the interactive schema explorer served on
// GET /graphql. The page loads GraphiQL from a CDN and points it at
// the same endpoint it is served from.
func GraphiQLPage() []byte {
	return graphiqlPage
}

var graphiqlPage = []byte(`<!DOCTYPE html>
<html>
<head>
	<title>GraphiQL</title>
	<style>
		body { height: 100%; margin: 0; width: 100%; overflow: hidden; }
		#graphiql { height: 100vh; }
	</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: window.location.pathname });
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>
`)
