package riot

// Platform region codes map to the routing cluster that serves their
// account and match APIs.
var regionClusters = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"kr":   "asia",
	"jp1":  "asia",
}

const defaultCluster = "americas"

// Cluster resolves a platform region code to its routing cluster. Unknown
// codes route to the default cluster rather than failing the request.
func Cluster(region string) string {
	if cluster, ok := regionClusters[region]; ok {
		return cluster
	}
	return defaultCluster
}
