package languages

// 常用注释语法，多个语言共享同一份只读切片。
var (
	slashComment = []string{"//"}
	hashComment  = []string{"#"}
	cBlock       = []BlockPair{{"/*", "*/"}}
	haskellBlock = []BlockPair{{"{-", "-}"}}
	xmlBlock     = []BlockPair{{"<!--", "-->"}}
)

// builtinProfiles 返回内置语言表。
// 每次调用都构造新的切片，调用方可以安全地持有。
func builtinProfiles() []Profile {
	return []Profile{
		{Name: "ABAP", Extensions: []string{"abap"}, SingleLine: []string{"*", "\""}},
		{Name: "ABNF", Extensions: []string{"abnf"}, SingleLine: []string{";"}},
		{Name: "ActionScript", Extensions: []string{"as"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Ada", Extensions: []string{"ada", "adb", "ads", "pad"}, SingleLine: []string{"--"}},
		{Name: "Agda", Extensions: []string{"agda"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "Alloy", Extensions: []string{"als"}, SingleLine: []string{"--", "//"}, Blocks: cBlock},
		{Name: "Arduino C++", Extensions: []string{"ino"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Assembly", Extensions: []string{"asm"}, SingleLine: []string{";"}},
		{Name: "GNU Style Assembly", Extensions: []string{"s"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "ASP", Extensions: []string{"asa", "asp"}, SingleLine: []string{"'", "REM"}},
		{Name: "ASP.NET", Extensions: []string{"asax", "ascx", "asmx", "aspx", "master", "sitemap", "webinfo"}, Blocks: []BlockPair{{"<!--", "-->"}, {"<%--", "-->"}}},
		{Name: "Autoconf", Extensions: []string{"in"}, SingleLine: []string{"#", "dnl"}},
		{Name: "Automake", Extensions: []string{"am"}, SingleLine: hashComment},
		{Name: "Bash", Extensions: []string{"bash"}, SingleLine: hashComment},
		{Name: "Batch", Extensions: []string{"bat", "btm", "cmd"}, SingleLine: []string{"REM", "::"}},
		{Name: "Cabal", Extensions: []string{"cabal"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "C", Extensions: []string{"c"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Ceylon", Extensions: []string{"ceylon"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "C Header", Extensions: []string{"h"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Clojure", Extensions: []string{"clj"}, SingleLine: []string{";"}},
		{Name: "ClojureScript", Extensions: []string{"cljs"}, SingleLine: []string{";"}},
		{Name: "ClojureC", Extensions: []string{"cljc"}, SingleLine: []string{";"}},
		{Name: "CMake", Extensions: []string{"cmake"}, SingleLine: hashComment},
		{Name: "Cobol", Extensions: []string{"cob", "cbl", "ccp", "cobol", "cpy"}, SingleLine: []string{"*"}},
		{Name: "CoffeeScript", Extensions: []string{"coffee", "cjsx"}, SingleLine: hashComment, Blocks: []BlockPair{{"###", "###"}}},
		{Name: "Coq", Extensions: []string{"v"}, Blocks: []BlockPair{{"(*", "*)"}}},
		{Name: "C++", Extensions: []string{"cc", "cpp", "cxx", "c++", "pcc", "tpp"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "C++ Header", Extensions: []string{"hh", "hpp", "hxx", "inl", "ipp"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Crystal", Extensions: []string{"crystal"}, SingleLine: hashComment},
		{Name: "C#", Extensions: []string{"cs", "csx"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "CSS", Extensions: []string{"css"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "D", Extensions: []string{"d"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "DAML", Extensions: []string{"daml"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "dart", Extensions: []string{"dart"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Emacs Lisp", Extensions: []string{"el"}, SingleLine: []string{";"}},
		{Name: "Elixir", Extensions: []string{"ex", "exs"}, SingleLine: hashComment},
		{Name: "Elm", Extensions: []string{"elm"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "Erlang", Extensions: []string{"erl", "hrl"}, SingleLine: []string{"%"}},
		{Name: "FreeMarker", Extensions: []string{"ftl", "ftlh", "ftlx"}, Blocks: []BlockPair{{"<#--", "-->"}}},
		{Name: "F#", Extensions: []string{"fs", "fsi", "fsx", "fsscript"}, SingleLine: slashComment, Blocks: []BlockPair{{"(*", "*)"}}},
		{Name: "Go", Extensions: []string{"go"}, SingleLine: slashComment, Blocks: []BlockPair{{"/*", "*/"}, {"/**", "*/"}}},
		{Name: "Go HTML", Extensions: []string{"gohtml"}, Blocks: []BlockPair{{"<!--", "-->"}, {"{{/*", "*/}}"}}},
		{Name: "GraphQL", Extensions: []string{"gql", "graphql"}, SingleLine: hashComment},
		{Name: "Groovy", Extensions: []string{"groovy", "grt", "gtpl", "gvy"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Gradle", Extensions: []string{"gradle"}, SingleLine: slashComment, Blocks: []BlockPair{{"/*", "*/"}, {"/**", "*/"}}},
		{Name: "Haskell", Extensions: []string{"hs"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "Haxe", Extensions: []string{"hx"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Html", Extensions: []string{"html", "xhtml", "hml"}, Blocks: xmlBlock},
		{Name: "Idris", Extensions: []string{"idr", "lidr"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "Ini", Extensions: []string{"ini"}, SingleLine: []string{";", "#"}},
		{Name: "Java", Extensions: []string{"java"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "JavaScript", Extensions: []string{"js", "mjs"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "JSON", Extensions: []string{"json"}},
		{Name: "JSX", Extensions: []string{"jsx"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Julia", Extensions: []string{"jl"}, SingleLine: hashComment, Blocks: []BlockPair{{"#=", "=#"}}},
		{Name: "Jupyter Notebooks", Extensions: []string{"ipynb"}},
		{Name: "Kotlin", Extensions: []string{"kt", "kts"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Less", Extensions: []string{"less"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "LLVM", Extensions: []string{"ll"}, SingleLine: []string{";"}},
		{Name: "Lua", Extensions: []string{"lua"}, SingleLine: []string{"--"}, Blocks: []BlockPair{{"--[[", "]]"}}},
		{Name: "Lucius", Extensions: []string{"lucius"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Markdown", Extensions: []string{"md", "markdown"}},
		{Name: "Mint", Extensions: []string{"mint"}},
		{Name: "Nim", Extensions: []string{"nim"}, SingleLine: hashComment},
		{Name: "Nix", Extensions: []string{"nix"}, Blocks: cBlock},
		{Name: "Objective-C", Extensions: []string{"m"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Objective-C++", Extensions: []string{"mm"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "OCaml", Extensions: []string{"ml", "mli", "re", "rei"}, Blocks: cBlock},
		{Name: "Org", Extensions: []string{"org"}, SingleLine: hashComment},
		{Name: "Pascal", Extensions: []string{"pas", "pp"}, SingleLine: slashComment, Blocks: []BlockPair{{"{", "}"}, {"(*", "*)"}}},
		{Name: "Perl", Extensions: []string{"pl", "pm"}, SingleLine: hashComment, Blocks: []BlockPair{{"=pod", "=cut"}}},
		{Name: "Pest", Extensions: []string{"pest"}, SingleLine: slashComment},
		{Name: "Plain Text", Extensions: []string{"text", "txt"}},
		{Name: "Php", Extensions: []string{"php4", "php5", "php", "phtml"}, SingleLine: []string{"#", "//"}, Blocks: []BlockPair{{"/*", "*/"}, {"/**", "*/"}}},
		{Name: "PostCSS", Extensions: []string{"pcss", "sss"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Prolog", Extensions: []string{"p", "pro"}, SingleLine: []string{"%"}},
		{Name: "Protocol Buffer", Extensions: []string{"proto"}, SingleLine: slashComment},
		{Name: "PowerShell", Extensions: []string{"ps1", "psm1", "psd1", "ps1xml", "cdxml", "pssc", "psc1"}, SingleLine: hashComment, Blocks: []BlockPair{{"<#", "#>"}}},
		{Name: "PureScript", Extensions: []string{"purs"}, SingleLine: []string{"--"}, Blocks: haskellBlock},
		{Name: "Python", Extensions: []string{"py"}, SingleLine: hashComment, Blocks: []BlockPair{{"'''", "'''"}, {"\"\"\"", "\"\"\""}}},
		{Name: "QCL", Extensions: []string{"qcl"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "R", Extensions: []string{"r"}, SingleLine: hashComment},
		{Name: "Racket", Extensions: []string{"rkt"}, SingleLine: []string{";"}, Blocks: []BlockPair{{"#|", "|#"}}},
		{Name: "Rakefile", Extensions: []string{"rake"}, SingleLine: hashComment, Blocks: []BlockPair{{"=begin", "=end"}}},
		{Name: "Rakudo", Extensions: []string{"pl6", "pm6"}, SingleLine: hashComment, Blocks: []BlockPair{{"=begin", "=end"}}},
		{Name: "Rust", Extensions: []string{"rs"}, SingleLine: []string{"//", "///", "///!"}, Blocks: cBlock},
		{Name: "Ruby", Extensions: []string{"rb"}, SingleLine: hashComment, Blocks: []BlockPair{{"=begin", "=end"}}},
		{Name: "Ruby HTML", Extensions: []string{"erb", "rhtml"}, Blocks: xmlBlock},
		{Name: "ReStructuredText", Extensions: []string{"rst"}},
		{Name: "Sass", Extensions: []string{"sass", "scss"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Scala", Extensions: []string{"scala", "sc"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "Scheme", Extensions: []string{"scm", "ss"}, SingleLine: []string{";"}, Blocks: []BlockPair{{"#|", "|#"}}},
		{Name: "Shell", Extensions: []string{"sh"}, SingleLine: hashComment},
		{Name: "Solidity", Extensions: []string{"sol"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "SQL", Extensions: []string{"sql"}, SingleLine: []string{"#", "--"}, Blocks: cBlock},
		{Name: "Stylus", Extensions: []string{"styl"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "SVG", Extensions: []string{"svg"}, Blocks: xmlBlock},
		{Name: "Swift", Extensions: []string{"swift"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "TCL", Extensions: []string{"tcl"}, SingleLine: hashComment},
		{Name: "Terraform", Extensions: []string{"tf", "tfvars"}, SingleLine: []string{"#", "//"}, Blocks: cBlock},
		{Name: "TeX", Extensions: []string{"tex", "sty"}, SingleLine: []string{"%"}},
		{Name: "Thrift", Extensions: []string{"thrift"}, SingleLine: []string{"#", "//"}, Blocks: cBlock},
		{Name: "Toml", Extensions: []string{"toml"}, SingleLine: hashComment},
		{Name: "TSX", Extensions: []string{"tsx"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "TypeScript", Extensions: []string{"ts"}, SingleLine: slashComment, Blocks: cBlock},
		{Name: "VBScript", Extensions: []string{"vbs"}, SingleLine: []string{"'", "REM"}},
		{Name: "Visual Basic", Extensions: []string{"vb"}, SingleLine: []string{"'"}},
		{Name: "Visual Studio Solution", Extensions: []string{"sln"}},
		{Name: "Visual Studio Project", Extensions: []string{"vcproj", "vcxproj"}, Blocks: xmlBlock},
		{Name: "Vim script", Extensions: []string{"vim"}, SingleLine: []string{"\""}},
		{Name: "Vue", Extensions: []string{"vue"}, SingleLine: slashComment, Blocks: []BlockPair{{"<!--", "-->"}, {"/*", "*/"}}},
		{Name: "WebAssembly", Extensions: []string{"wat", "wast"}, SingleLine: []string{";;"}},
		{Name: "XML", Extensions: []string{"xml"}, Blocks: []BlockPair{{"<!--", "-->"}, {"<![CDATA[", "]]>"}}},
		{Name: "Yaml", Extensions: []string{"yml", "yaml"}, SingleLine: hashComment},
		{Name: "Zig", Extensions: []string{"zig"}, SingleLine: slashComment},
		{Name: "Zsh", Extensions: []string{"zsh"}, SingleLine: hashComment},
	}
}
