// Package connectivity groups entities by a shared attribute and reports the
// entities reachable from a target group.
//
// NewNetwork turns every attribute group into a clique of zero-weight links
// stored in a core.Graph. A Detector then runs dfs.DFS from each entity whose
// attribute matches the target (ignoring case), collecting everything it
// reaches in discovery order.
//
// The Detector remembers what it has visited for its whole lifetime, so a
// second query for the same target yields nothing new. Call Reset to run
// independent queries on the same Detector.
//
//	net := connectivity.NewNetwork(entities)
//	det := connectivity.NewDetector(net)
//	for _, e := range det.FindConnected(entities, "us") {
//	    fmt.Println(e) // "name (US)"
//	}
package connectivity
