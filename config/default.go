package config

func GetDefault() Config {
	return Config{
		API:      APIREST,
		VCS:      VCSGit,
		Upstream: "origin",
		TagQuery: "v*",
		Format:   FormatJSON,
	}
}
