package languages

import (
	"path/filepath"
	"sort"
	"strings"

	"cloc/internal/clocerr"
)

// BlockPair 是一对块注释起止标记。
type BlockPair struct {
	Start string
	End   string
}

// Profile 描述一种语言的后缀和注释语法，构造后不再修改。
//
// SingleLine 和 Blocks 均按声明顺序尝试，先匹配者生效（不做最长匹配）。
type Profile struct {
	Name       string
	Extensions []string
	SingleLine []string
	Blocks     []BlockPair
}

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言配置与后缀映射。
// 初始化完成后只读，可被所有 worker 无锁共享。
type Registry struct {
	profiles      []*Profile
	profileByExt  map[string]*Profile
	profileByName map[string]*Profile
}

// NewRegistry 使用内置语言表创建注册中心。
func NewRegistry() *Registry {
	return NewRegistryFrom(builtinProfiles())
}

// NewRegistryFrom 使用给定的语言表创建注册中心。
// 多个语言声明同一后缀时，后声明者覆盖先声明者。
func NewRegistryFrom(profiles []Profile) *Registry {
	registry := &Registry{
		profiles:      make([]*Profile, 0, len(profiles)),
		profileByExt:  make(map[string]*Profile),
		profileByName: make(map[string]*Profile),
	}

	owned := append([]Profile(nil), profiles...)
	for i := range owned {
		profile := &owned[i]
		registry.profiles = append(registry.profiles, profile)
		registry.profileByName[profile.Name] = profile
		for _, ext := range profile.Extensions {
			registry.profileByExt[ext] = profile
		}
	}

	return registry
}

// Resolve 按后缀查找语言配置。后缀区分大小写，不带点号。
func (r *Registry) Resolve(extension string) (*Profile, bool) {
	profile, ok := r.profileByExt[extension]
	return profile, ok
}

// Lookup 根据文件路径查找语言配置，找不到时返回 Unrecognized 错误。
func (r *Registry) Lookup(path string) (*Profile, error) {
	extension := Extension(path)
	if extension == "" {
		return nil, clocerr.Unrecognized(path, extension)
	}

	profile, ok := r.Resolve(extension)
	if !ok {
		return nil, clocerr.Unrecognized(path, extension)
	}
	return profile, nil
}

// Extension 返回文件名最后一个点号之后的部分。
// 没有点号或以点号开头的隐藏文件（如 .bashrc）视为没有后缀。
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}

// Languages 返回已注册语言清单，按名称排序。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		result = append(result, LanguageDescriptor{
			Name:       profile.Name,
			Extensions: r.ExtensionsForLanguage(profile.Name),
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言实际生效的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	profile, ok := r.profileByName[language]
	if !ok {
		return nil
	}

	extensions := make([]string, 0, len(profile.Extensions))
	for _, ext := range profile.Extensions {
		if r.profileByExt[ext] == profile {
			extensions = append(extensions, ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}
