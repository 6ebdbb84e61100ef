package careerdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailFor(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("已知职业返回对应详情", func(t *testing.T) {
		d := catalog.DetailFor("Software Engineer")
		require.Contains(t, d.Description, "Software engineers")
		require.NotEmpty(t, d.SkillsRequired)
		require.NotEmpty(t, d.Companies)
	})

	t.Run("未知标签返回兜底记录而非报错", func(t *testing.T) {
		d := catalog.DetailFor("Quantum Astrologer")
		require.Equal(t, "Career information not available.", d.Description)
		require.Equal(t, "₹3-10 LPA", d.SalaryRange)
		require.Equal(t, "Good", d.JobOutlook)
		require.NotNil(t, d.SkillsRequired)
		require.NotNil(t, d.Companies)
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("内置分区齐全", func(t *testing.T) {
		require.NotEmpty(t, catalog.Careers)
		require.NotEmpty(t, catalog.Courses)
		require.NotEmpty(t, catalog.Skills)
	})

	t.Run("替代升学路径四个子项字段完整", func(t *testing.T) {
		require.Len(t, catalog.AlternativePaths, 4)
		for _, p := range catalog.AlternativePaths {
			require.NotEmpty(t, p.Name)
			require.NotEmpty(t, p.Description)
			require.NotEmpty(t, p.Eligibility)
			require.NotEmpty(t, p.Duration)
			require.NotEmpty(t, p.Fees)
			require.NotEmpty(t, p.JobProspects)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("缺失分区回落到内置数据", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "careers.yaml")
		partial := `careers:
  Test Career:
    description: A test career entry.
    salary_range: ₹1-2 LPA
`
		require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

		catalog, err := Load(path)
		require.NoError(t, err)

		d := catalog.DetailFor("Test Career")
		require.Equal(t, "A test career entry.", d.Description)

		// 文件未提供的分区使用内置数据
		require.NotEmpty(t, catalog.Courses)
		require.NotEmpty(t, catalog.Skills)
		require.Len(t, catalog.AlternativePaths, 4)
	})

	t.Run("文件缺失或损坏报错", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)

		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("careers: [not: a: map"), 0644))
		_, err = Load(bad)
		require.Error(t, err)
	})

	t.Run("随仓库发布的资源文件可解析", func(t *testing.T) {
		catalog, err := Load(filepath.Join("..", "..", "configs", "careers.yaml"))
		require.NoError(t, err)
		require.Contains(t, catalog.Careers, "Software Engineer")
		require.Len(t, catalog.AlternativePaths, 4)
	})
}
