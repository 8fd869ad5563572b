package shell

import "fmt"

// Shells lists the shells Init supports.
var Shells = []string{"bash", "zsh", "fish"}

// Init returns the wrapper function for the given shell. The wrapper evaluates
// mr's output, so "mr web" changes the directory of the calling shell.
func Init(shell string) (string, error) {
	switch shell {
	case "bash":
		return bashInit, nil
	case "zsh":
		return zshInit, nil
	case "fish":
		return fishInit, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
}

const bashInit = `# mr shell wrapper
# Install: eval "$(mr init bash)"

mr() {
    case "$1" in
        init|config|completion|help|-h|--help|--version)
            command mr "$@"
            ;;
        *)
            local cmd
            cmd="$(command mr "$@")" && eval "$cmd"
            ;;
    esac
}
`

const zshInit = `# mr shell wrapper
# Install: eval "$(mr init zsh)"

mr() {
    case "$1" in
        init|config|completion|help|-h|--help|--version)
            command mr "$@"
            ;;
        *)
            local cmd
            cmd="$(command mr "$@")" && eval "$cmd"
            ;;
    esac
}
`

const fishInit = `# mr shell wrapper
# Install: mr init fish | source
# Or add to config.fish: mr init fish | source

function mr --wraps=mr --description 'Monorepo context switching'
    switch "$argv[1]"
        case init config completion help -h --help --version
            command mr $argv
        case '*'
            set -lx MR_SHELL fish
            set -l cmd (command mr $argv | string collect)
            and eval $cmd
    end
end
`
