package rpmvars

// Short messages (one-liners)
const (
	MsgRootShort       = "Generate Ansible vars YAML from installed RPM package contents"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgTopicsShort     = "Display documentation topics"

	// Flag help
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDistro  = "Validation policy (auto-detected via /etc/os-release when auto)"
	MsgFlagOutput  = "Output YAML file path (default: files_<PACKAGE>.yml)"
	MsgFlagInput   = "Read package dumps from a JSON file instead of the RPM database"
	MsgFlagPlain   = "Use the plain line-oriented emitter instead of the yaml library"
	MsgFlagVersion = "Print the version and exit"

	// Status messages
	MsgWroteFormat = "wrote: %s\n"
	MsgUsageHint   = "usage: rpmvars [--distro {auto,debian,ubuntu,rhel,fedora}] NAME\n" +
		"hint: provide an installed package NAME, e.g., 'shadow-utils'\n"
)

// Long-form command help
const (
	MsgRootLong = `rpmvars converts the per-file metadata of an installed RPM package into
an Ansible-style vars YAML document.

Files are grouped into five fixed categories:

  configuration  files carrying the RPM 'config' flag
  artifacts      everything not otherwise categorized
  docs           files carrying the RPM 'doc' flag
  licenses       files carrying the RPM 'license' flag
  general        symlinks not otherwise categorized

Every file becomes one addressable entry with a stable, collision-free
key derived from its path. Output goes to files_<PACKAGE>.yml unless
-o/--output says otherwise.`

	MsgRootExample = `  # Generate vars for an installed package
  rpmvars shadow-utils

  # Pick the validation policy explicitly and choose the output path
  rpmvars --distro rhel -o shadow.yml shadow-utils

  # Work from a JSON dump instead of the local RPM database
  rpmvars --input dump.json shadow-utils`
)
