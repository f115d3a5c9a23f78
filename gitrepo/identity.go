package gitrepo

import (
	"strings"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/scm"
)

// SourceRepo resolves the repository identity behind the configured source
// remote (usually "origin"). Returns ErrAmbiguousRepository when the remote
// URL cannot be matched against the forge host.
func (r *Repository) SourceRepo() (scm.Repo, error) {
	return r.remoteRepo(config.Viper(r.ctx).GetString(config.GitRemote))
}

// UpstreamRepo resolves the repository identity behind the configured
// upstream remote, used when creating requests against a fork's parent.
func (r *Repository) UpstreamRepo() (scm.Repo, error) {
	return r.remoteRepo(config.Viper(r.ctx).GetString(config.GitUpstream))
}

func (r *Repository) remoteRepo(remote string) (scm.Repo, error) {
	url := r.RemoteURL(remote)
	if url == "" {
		return scm.Repo{}, scm.ErrAmbiguousRepository
	}

	host := config.Viper(r.ctx).GetString(config.GitHubHost)

	repo, ok := ResolveIdentity(url, host, r.insteadOfRules())
	if !ok {
		return scm.Repo{}, scm.ErrAmbiguousRepository
	}

	return repo, nil
}

// insteadOfRules reads the git URL rewrite table: a map from each insteadof
// substitution prefix back to its canonical prefix.
func (r *Repository) insteadOfRules() map[string]string {
	rules := make(map[string]string)

	out, err := r.git("config", "--get-regexp", `url\..*\.insteadof`)
	if err != nil {
		return rules
	}

	// Each line is "url.<canonical>.insteadof <substitution>".
	for line := range strings.SplitSeq(out, "\n") {
		key, substitution, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}

		canonical := strings.TrimPrefix(key, "url.")
		canonical = strings.TrimSuffix(canonical, ".insteadof")

		rules[substitution] = canonical
	}

	return rules
}

// ResolveIdentity maps a remote URL to a repository identity. It first tries
// to match the URL directly against the forge host; failing that, it applies
// the insteadof rewrite rule whose substitution prefix appears in the URL
// and retries the direct match on the rewritten URL.
func ResolveIdentity(url, host string, rules map[string]string) (scm.Repo, bool) {
	if repo, ok := ParseIdentity(url, host); ok {
		return repo, true
	}

	for substitution, canonical := range rules {
		if !strings.HasPrefix(url, substitution) {
			continue
		}

		rewritten := canonical + strings.TrimPrefix(url, substitution)
		if repo, ok := ParseIdentity(rewritten, host); ok {
			return repo, true
		}
	}

	return scm.Repo{}, false
}

// ParseIdentity extracts owner and repository name from a remote URL in SSH
// ("git@host:owner/repo.git"), SSH-URL ("ssh://git@host/owner/repo.git") or
// HTTPS ("https://host/owner/repo.git") form for the given forge host.
func ParseIdentity(url, host string) (scm.Repo, bool) {
	var path string

	switch {
	case strings.HasPrefix(url, "git@"+host+":"):
		path = strings.TrimPrefix(url, "git@"+host+":")
	case strings.HasPrefix(url, "ssh://git@"+host+"/"):
		path = strings.TrimPrefix(url, "ssh://git@"+host+"/")
	case strings.HasPrefix(url, "https://"+host+"/"):
		path = strings.TrimPrefix(url, "https://"+host+"/")
	case strings.HasPrefix(url, "http://"+host+"/"):
		path = strings.TrimPrefix(url, "http://"+host+"/")
	default:
		return scm.Repo{}, false
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")

	owner, name, ok := strings.Cut(path, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return scm.Repo{}, false
	}

	return scm.Repo{Owner: owner, Name: name}, true
}
